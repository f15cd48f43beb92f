package engine

import (
	"math"

	"github.com/osukit/pp-api/internal/models"
)

const performanceBaseMultiplier = 1.14

type performanceCalculator struct{}

// NewPerformanceCalculator returns the default performance stand-in. The
// total follows the usual pp combination shape: a star-rating base curve,
// length bonus, combo scaling, accuracy curve and a miss penalty driven by
// an effective miss count that also accounts for combo gaps.
func NewPerformanceCalculator() PerformanceCalculator {
	return performanceCalculator{}
}

func (performanceCalculator) Calculate(score ScoreRecord, attrs DifficultyAttributes) (PerformanceAttributes, error) {
	if attrs.ObjectCount == 0 || attrs.MaxCombo == 0 {
		return PerformanceAttributes{}, nil
	}

	misses := score.Statistics[models.HitMiss]
	effectiveMisses := effectiveMissCount(score, attrs, misses)

	base := math.Pow(5*math.Max(1, attrs.StarRating/0.0675)-4, 2.25) / 15000

	lengthBonus := 0.95 + 0.4*math.Min(1, float64(attrs.ObjectCount)/2000)

	comboScale := 1.0
	if score.MaxCombo > 0 && score.MaxCombo < attrs.MaxCombo {
		comboScale = math.Pow(float64(score.MaxCombo)/float64(attrs.MaxCombo), 0.8)
	}

	accuracy := math.Max(0, math.Min(1, score.Accuracy))
	accFactor := math.Pow(accuracy, 5.5)

	missPenalty := math.Pow(0.97, effectiveMisses)

	total := base * lengthBonus * comboScale * accFactor * missPenalty * performanceBaseMultiplier

	return PerformanceAttributes{
		Total:              total,
		EffectiveMissCount: effectiveMisses,
	}, nil
}

// effectiveMissCount folds combo gaps into the miss count: a score combo
// well short of the chart maximum implies dropped objects even when the
// breakdown reports few outright misses.
func effectiveMissCount(score ScoreRecord, attrs DifficultyAttributes, misses int) float64 {
	effective := float64(misses)
	if score.MaxCombo > 0 && score.MaxCombo < attrs.MaxCombo {
		comboBased := float64(attrs.MaxCombo-score.MaxCombo) / math.Max(1, float64(score.MaxCombo))
		effective = math.Max(effective, comboBased)
	}
	return math.Min(effective, float64(attrs.ObjectCount))
}
