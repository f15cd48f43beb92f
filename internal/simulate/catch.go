package simulate

import (
	"github.com/osukit/pp-api/internal/models"
	"github.com/osukit/pp-api/internal/rulesets"
)

// CatchObjectCounts holds the maximum achievable judgment counts of a catch
// chart. They are recomputed from the converted object tree on every
// calculation; nothing caches them across calls.
type CatchObjectCounts struct {
	MaxFruits        int
	MaxDropletsTotal int
	MaxTinyDroplets  int
}

// MaxDroplets returns the droplet count excluding tiny droplets.
func (c CatchObjectCounts) MaxDroplets() int {
	return c.MaxDropletsTotal - c.MaxTinyDroplets
}

// CountCatchObjects walks a converted catch object tree: fruits count
// directly, juice streams contribute their nested tiny droplets, droplets
// and fruits.
func CountCatchObjects(objects []rulesets.CatchObject) CatchObjectCounts {
	var counts CatchObjectCounts
	for _, o := range objects {
		switch o.Kind {
		case rulesets.CatchFruit:
			counts.MaxFruits++
		case rulesets.CatchJuiceStream:
			for _, n := range o.Nested {
				switch n.Kind {
				case rulesets.CatchTinyDroplet:
					counts.MaxTinyDroplets++
					counts.MaxDropletsTotal++
				case rulesets.CatchDroplet:
					counts.MaxDropletsTotal++
				case rulesets.CatchFruit:
					counts.MaxFruits++
				}
			}
		}
	}
	return counts
}

// simulateCatch is a deliberately simplified approximation rather than a
// full inversion: every miss is assumed to be a droplet miss, and all fruits
// and tiny droplets are assumed hit. Accuracy is not consulted at all —
// catch's real accuracy weighting is combo-based and much harder to invert,
// so the declared accuracy and the returned counts can disagree. Known
// limitation, kept on purpose.
func simulateCatch(counts CatchObjectCounts, misses int) models.HitCounts {
	countDroplets := counts.MaxDroplets() - misses
	if countDroplets < 0 {
		countDroplets = 0
	}

	return models.HitCounts{
		models.HitGreat:        counts.MaxFruits,
		models.HitLargeTickHit: countDroplets,
		models.HitSmallTickHit: counts.MaxTinyDroplets,
		models.HitMiss:         misses,
	}
}
