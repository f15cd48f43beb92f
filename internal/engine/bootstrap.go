package engine

import "sync"

// The default calculators are process-wide and constructed exactly once.
// Bootstrap mirrors the one-time runtime initialization a real scoring
// engine needs before any calculation; repeated calls are a no-op, never an
// error.
var (
	bootstrapOnce      sync.Once
	defaultDifficulty  DifficultyCalculator
	defaultPerformance PerformanceCalculator
)

// Bootstrap initializes the default calculators. Safe to call from multiple
// goroutines and from multiple call sites; only the first call does work.
func Bootstrap() {
	bootstrapOnce.Do(func() {
		defaultDifficulty = NewDifficultyCalculator()
		defaultPerformance = NewPerformanceCalculator()
	})
}

// DefaultDifficulty returns the process-wide difficulty calculator,
// bootstrapping on first use.
func DefaultDifficulty() DifficultyCalculator {
	Bootstrap()
	return defaultDifficulty
}

// DefaultPerformance returns the process-wide performance calculator,
// bootstrapping on first use.
func DefaultPerformance() PerformanceCalculator {
	Bootstrap()
	return defaultPerformance
}
