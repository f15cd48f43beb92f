package engine

import (
	"math"

	"github.com/osukit/pp-api/internal/rulesets"
)

type difficultyCalculator struct{}

// NewDifficultyCalculator returns the default difficulty stand-in. Star
// rating is derived from object density under the mod clock rate, scaled by
// the mods' difficulty factors; max combo comes straight from the converted
// chart's combo-relevant object count.
func NewDifficultyCalculator() DifficultyCalculator {
	return difficultyCalculator{}
}

func (difficultyCalculator) Calculate(chart *rulesets.Chart, mods []rulesets.Mod) (DifficultyAttributes, error) {
	attrs := DifficultyAttributes{
		MaxCombo:    chart.ComboObjects,
		ObjectCount: chart.ObjectCount,
	}
	if chart.ObjectCount == 0 {
		return attrs, nil
	}

	rate := ClockRate(mods)
	drainSeconds := math.Max(1, chart.LengthMS/1000/rate)
	density := float64(chart.ObjectCount) / drainSeconds

	// Aim-like and speed-like components blended into a single rating;
	// speed scales with clock rate directly, aim only through density.
	aim := math.Pow(density, 0.6)
	speed := math.Pow(density, 0.45) * rate
	stars := (aim + speed) / 2 * difficultyScale(mods)

	attrs.StarRating = stars
	return attrs, nil
}

// ClockRate returns the combined clock rate of a mod list.
func ClockRate(mods []rulesets.Mod) float64 {
	rate := 1.0
	for _, m := range mods {
		if m.ClockRate > 0 {
			rate *= m.ClockRate
		}
	}
	return rate
}

func difficultyScale(mods []rulesets.Mod) float64 {
	scale := 1.0
	for _, m := range mods {
		if m.DifficultyScale > 0 {
			scale *= m.DifficultyScale
		}
	}
	return scale
}
