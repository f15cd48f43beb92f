package simulate

import (
	"math"

	"github.com/osukit/pp-api/internal/models"
)

// simulateMania splits the non-miss objects between two adjacent judgment
// tiers, linearly interpolating within five fixed accuracy windows. The
// upper-tier count is rounded and the remainder goes to the lower tier, so
// rounding drift never exceeds one unit.
func simulateMania(accPercent float64, total, misses int) models.HitCounts {
	relevant := total - misses
	accuracy := accPercent / 100

	var nPerfect, nGreat, nGood, nOk, nMeh int

	if relevant > 0 {
		switch {
		case accuracy >= 0.96:
			p := 1 - (1-accuracy)/0.04
			nPerfect = int(math.Round(p * float64(relevant)))
			nGreat = relevant - nPerfect
		case accuracy >= 0.90:
			p := 1 - (0.96-accuracy)/0.06
			nGreat = int(math.Round(p * float64(relevant)))
			nGood = relevant - nGreat
		case accuracy >= 0.80:
			p := 1 - (0.90-accuracy)/0.10
			nGood = int(math.Round(p * float64(relevant)))
			nOk = relevant - nGood
		case accuracy >= 0.60:
			p := 1 - (0.80-accuracy)/0.20
			nOk = int(math.Round(p * float64(relevant)))
			nMeh = relevant - nOk
		default:
			nMeh = relevant
		}
	}

	return models.HitCounts{
		models.HitPerfect: nonNegative(nPerfect),
		models.HitGreat:   nonNegative(nGreat),
		models.HitGood:    nonNegative(nGood),
		models.HitOk:      nonNegative(nOk),
		models.HitMeh:     nonNegative(nMeh),
		models.HitMiss:    nonNegative(misses),
	}
}
