package rulesets

import "github.com/osukit/pp-api/internal/beatmap"

// CatchObjectKind enumerates the catch object vocabulary.
type CatchObjectKind int

const (
	CatchFruit CatchObjectKind = iota
	CatchDroplet
	CatchTinyDroplet
	CatchJuiceStream
)

// CatchObject is one converted catch object. Juice streams carry their
// nested fruits, droplets and tiny droplets; all other kinds are leaves.
type CatchObject struct {
	Kind   CatchObjectKind
	Nested []CatchObject
}

// convertCatch maps circles to fruits and sliders to juice streams. Spinners
// become banana showers upstream and contribute nothing to combo or to the
// judgment counts used here, so they are dropped.
//
// Nested generation uses a simplified tick model: one droplet per slider
// tick, tiny droplets on an eighth-beat grid between them, and a fruit at
// each span boundary. The simulators only consume the resulting counts.
func convertCatch(c *beatmap.Chart) []CatchObject {
	var out []CatchObject
	for _, o := range c.Objects {
		switch {
		case o.IsCircle():
			out = append(out, CatchObject{Kind: CatchFruit})
		case o.IsSlider():
			out = append(out, juiceStream(c, o))
		}
	}
	return out
}

func juiceStream(c *beatmap.Chart, o beatmap.HitObject) CatchObject {
	beatLen := c.BeatLengthAt(o.Time)
	spanDuration := c.SliderSpanDuration(o)
	spans := max(1, o.Slides)

	tickInterval := beatLen
	if c.SliderTickRate > 0 {
		tickInterval = beatLen / c.SliderTickRate
	}
	tinyInterval := beatLen / 8

	ticksPerSpan := 0
	if tickInterval > 0 && spanDuration > tickInterval {
		ticksPerSpan = int(spanDuration/tickInterval) - 1
		if ticksPerSpan < 0 {
			ticksPerSpan = 0
		}
	}
	tinyPerSpan := 0
	if tinyInterval > 0 {
		tinyPerSpan = int(spanDuration/tinyInterval) - ticksPerSpan - 1
		if tinyPerSpan < 0 {
			tinyPerSpan = 0
		}
	}

	// Head fruit, then per span: droplets at ticks, tiny droplets between,
	// and a fruit on the span end (repeat or tail).
	nested := []CatchObject{{Kind: CatchFruit}}
	for s := 0; s < spans; s++ {
		for i := 0; i < ticksPerSpan; i++ {
			nested = append(nested, CatchObject{Kind: CatchDroplet})
		}
		for i := 0; i < tinyPerSpan; i++ {
			nested = append(nested, CatchObject{Kind: CatchTinyDroplet})
		}
		nested = append(nested, CatchObject{Kind: CatchFruit})
	}

	return CatchObject{Kind: CatchJuiceStream, Nested: nested}
}

// countNested tallies fruits, droplets (excluding tiny) and tiny droplets
// across the whole object tree.
func countNested(objects []CatchObject) (fruits, droplets, tiny int) {
	for _, o := range objects {
		switch o.Kind {
		case CatchFruit:
			fruits++
		case CatchJuiceStream:
			for _, n := range o.Nested {
				switch n.Kind {
				case CatchTinyDroplet:
					tiny++
				case CatchDroplet:
					droplets++
				case CatchFruit:
					fruits++
				}
			}
		}
	}
	return fruits, droplets, tiny
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
