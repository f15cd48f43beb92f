package simulate

import (
	"math"

	"github.com/osukit/pp-api/internal/models"
)

// simulateTaiko inverts the two-judgment weighting
//
//	accuracy = (2*nGreat + nOk) / (2*relevant)
func simulateTaiko(accPercent float64, total, misses int) models.HitCounts {
	relevant := total - misses
	accuracy := accPercent / 100

	nGreat := int(math.Round((2*accuracy - 1) * float64(relevant)))
	nOk := relevant - nGreat

	return models.HitCounts{
		models.HitGreat: nonNegative(nGreat),
		models.HitOk:    nonNegative(nOk),
		models.HitMiss:  nonNegative(misses),
	}
}
