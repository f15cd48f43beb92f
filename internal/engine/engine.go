// Package engine hosts the scoring collaborators behind the calculation
// pipeline: difficulty and performance calculators. The interfaces are the
// owned contract; the default implementations are deterministic stand-ins
// whose output shape matches full difficulty/performance engines, not a
// reimplementation of their internal scoring rules.
package engine

import (
	"github.com/osukit/pp-api/internal/models"
	"github.com/osukit/pp-api/internal/rulesets"
)

// DifficultyAttributes describe a converted chart under a mod combination.
type DifficultyAttributes struct {
	StarRating  float64 `json:"star_rating"`
	MaxCombo    int     `json:"max_combo"`
	ObjectCount int     `json:"object_count"`
}

// PerformanceAttributes are the figures computed for one score.
type PerformanceAttributes struct {
	Total              float64 `json:"total"`
	EffectiveMissCount float64 `json:"effective_miss_count"`
}

// ScoreRecord is the score handed to the performance calculator: combo,
// accuracy as a fraction, resolved mods and the judgment breakdown that
// drove the calculation.
type ScoreRecord struct {
	Mode       models.Mode
	MaxCombo   int
	Accuracy   float64
	Mods       []rulesets.Mod
	Statistics models.HitCounts
}

// DifficultyCalculator computes difficulty attributes for a chart + mods.
type DifficultyCalculator interface {
	Calculate(chart *rulesets.Chart, mods []rulesets.Mod) (DifficultyAttributes, error)
}

// PerformanceCalculator converts a score record and difficulty attributes
// into performance attributes.
type PerformanceCalculator interface {
	Calculate(score ScoreRecord, attrs DifficultyAttributes) (PerformanceAttributes, error)
}
