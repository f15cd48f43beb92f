// Package simulate reconstructs a per-judgment hit-count distribution for a
// play. When a caller supplies an explicit breakdown it is used verbatim;
// otherwise each mode inverts its own accuracy-weighting formula to estimate
// a distribution that is consistent with the declared accuracy and miss
// count. The inversion only promises self-consistency, not that the result
// is the play that actually happened.
package simulate

import (
	"github.com/osukit/pp-api/internal/models"
)

// Request is the input bundle for one simulation. Accuracy is a percentage;
// it is conventionally 0-100 but deliberately not clamped here. Score is
// reserved for future weighting and unused by every mode's math.
type Request struct {
	Mode         models.Mode
	Accuracy     float64
	TotalObjects int
	Misses       int
	Score        *int64
	Catch        *CatchObjectCounts
}

// EffectiveMissCount returns the miss count that should drive a calculation:
// the explicit breakdown's miss field when the breakdown is valid, else the
// caller-supplied fallback. This keeps reported misses consistent with
// whichever data source is actually used.
func EffectiveMissCount(explicit *models.HitStatistics, fallback int) int {
	if explicit.HasValidHits() {
		return explicit.Miss
	}
	return fallback
}

// Resolve produces the hit-count distribution for a request. A valid
// explicit breakdown short-circuits simulation and is trusted as-is: no
// rebalancing and no sum enforcement.
func Resolve(req Request, explicit *models.HitStatistics) models.HitCounts {
	if explicit.HasValidHits() {
		return mapExplicit(req.Mode, explicit)
	}

	switch req.Mode {
	case models.ModeTaiko:
		return simulateTaiko(req.Accuracy, req.TotalObjects, req.Misses)
	case models.ModeCatch:
		var counts CatchObjectCounts
		if req.Catch != nil {
			counts = *req.Catch
		}
		return simulateCatch(counts, req.Misses)
	case models.ModeMania:
		return simulateMania(req.Accuracy, req.TotalObjects, req.Misses)
	default:
		return simulateOsu(req.Accuracy, req.TotalObjects, req.Misses)
	}
}

// mapExplicit projects the explicit breakdown onto the mode's judgment
// vocabulary. Each mode reads a fixed field set; fields outside it are
// ignored rather than folded in.
func mapExplicit(mode models.Mode, s *models.HitStatistics) models.HitCounts {
	switch mode {
	case models.ModeTaiko:
		return models.HitCounts{
			models.HitGreat: s.Great,
			models.HitOk:    s.Ok,
			models.HitMiss:  s.Miss,
		}
	case models.ModeCatch:
		return models.HitCounts{
			models.HitGreat:         s.Great,
			models.HitLargeTickHit:  s.LargeTickHit,
			models.HitSmallTickHit:  s.SmallTickHit,
			models.HitSmallTickMiss: s.SmallTickMiss,
			models.HitMiss:          s.Miss,
		}
	case models.ModeMania:
		return models.HitCounts{
			models.HitPerfect: s.Perfect,
			models.HitGreat:   s.Great,
			models.HitGood:    s.Good,
			models.HitOk:      s.Ok,
			models.HitMeh:     s.Meh,
			models.HitMiss:    s.Miss,
		}
	default:
		return models.HitCounts{
			models.HitGreat: s.Great,
			models.HitOk:    s.Ok,
			models.HitMeh:   s.Meh,
			models.HitMiss:  s.Miss,
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
