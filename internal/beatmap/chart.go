package beatmap

// Legacy hit object type bitmask.
const (
	TypeCircle   = 1 << 0
	TypeSlider   = 1 << 1
	TypeNewCombo = 1 << 2
	TypeSpinner  = 1 << 3
	TypeHold     = 1 << 7
)

// HitObject is one entry from the [HitObjects] section. Slider-only fields
// are zero for other object kinds.
type HitObject struct {
	X, Y   float64
	Time   float64 // ms
	Type   int
	Slides int     // slider span count, 1 = no repeats
	Length float64 // slider pixel length
}

func (o HitObject) IsCircle() bool  { return o.Type&TypeCircle != 0 }
func (o HitObject) IsSlider() bool  { return o.Type&TypeSlider != 0 }
func (o HitObject) IsSpinner() bool { return o.Type&TypeSpinner != 0 }
func (o HitObject) IsHold() bool    { return o.Type&TypeHold != 0 }

// TimingPoint carries beat length for uninherited points. Inherited (green
// line) points are kept but ignored by beat length lookup; slider velocity
// overrides are not modeled here.
type TimingPoint struct {
	Time        float64
	BeatLength  float64
	Uninherited bool
}

// Chart is the decoded representation of a legacy .osu file, restricted to
// what the calculation pipeline consumes: object list, timing for slider
// durations, and the difficulty keys that drive tick counts.
type Chart struct {
	FormatVersion    int
	Mode             int
	SliderMultiplier float64
	SliderTickRate   float64
	TimingPoints     []TimingPoint
	Objects          []HitObject
}

// BeatLengthAt returns the beat length in effect at the given time,
// from the last uninherited timing point at or before it.
func (c *Chart) BeatLengthAt(t float64) float64 {
	beatLen := 500.0 // 120 BPM fallback for charts without timing
	for _, tp := range c.TimingPoints {
		if !tp.Uninherited || tp.Time > t {
			continue
		}
		beatLen = tp.BeatLength
	}
	return beatLen
}

// SliderSpanDuration returns the duration in ms of a single slider span.
func (c *Chart) SliderSpanDuration(o HitObject) float64 {
	velocity := c.SliderMultiplier * 100 // osupixels per beat
	if velocity <= 0 {
		return 0
	}
	return o.Length / velocity * c.BeatLengthAt(o.Time)
}

// LengthMS returns the time span covered by the chart's objects.
func (c *Chart) LengthMS() float64 {
	if len(c.Objects) == 0 {
		return 0
	}
	first := c.Objects[0].Time
	last := c.Objects[len(c.Objects)-1].Time
	if o := c.Objects[len(c.Objects)-1]; o.IsSlider() {
		last += c.SliderSpanDuration(o) * float64(max(1, o.Slides))
	}
	return last - first
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
