package simulate

import (
	"math"

	"github.com/osukit/pp-api/internal/models"
)

// simulateOsu inverts the standard accuracy formula
//
//	accuracy = (6*n300 + 2*n100 + n50) / (6*total)
//
// back into judgment counts. The formula is only piecewise-invertible when
// one judgment type is assumed absent, so the rescaled accuracy is split
// into three bands: no 50s, no 300s, and only 50s plus misses.
func simulateOsu(accPercent float64, total, misses int) models.HitCounts {
	relevant := total - misses
	if relevant <= 0 {
		return models.HitCounts{models.HitMiss: misses}
	}

	accuracy := accPercent / 100
	// Rescale onto the objects that were not missed; the weighting above
	// only explains non-miss judgments.
	relAcc := clamp01(accuracy * float64(total) / float64(relevant))

	var n300, n100, n50 int

	switch {
	case relAcc >= 0.25:
		ratio := math.Pow(1-(relAcc-0.25)/0.75, 2)
		c100 := 6 * float64(relevant) * (1 - relAcc) / (5*ratio + 4)
		c50 := c100 * ratio
		n100 = int(math.Round(c100))
		// Round the cumulative sum first, then subtract, so total rounding
		// drift stays within one unit.
		n50 = int(math.Round(c100+c50)) - n100
	case relAcc >= 1.0/6:
		c100 := 6*float64(relevant)*relAcc - float64(relevant)
		c50 := float64(relevant) - c100
		n100 = int(math.Round(c100))
		n50 = int(math.Round(c100+c50)) - n100
	default:
		// Accuracy this low cannot be explained without converting the
		// deficit into misses.
		c50 := 6 * float64(relevant) * relAcc
		n50 = int(math.Round(c50))
		misses = total - n50
	}

	n300 = total - n100 - n50 - misses

	return models.HitCounts{
		models.HitGreat: nonNegative(n300),
		models.HitOk:    nonNegative(n100),
		models.HitMeh:   nonNegative(n50),
		models.HitMiss:  nonNegative(misses),
	}
}
