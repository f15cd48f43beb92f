package models

// HitResult is a judgment kind awarded to a single scorable object.
// The string values double as the wire names in stats_used responses.
type HitResult string

const (
	HitMiss          HitResult = "miss"
	HitMeh           HitResult = "meh"
	HitOk            HitResult = "ok"
	HitGood          HitResult = "good"
	HitGreat         HitResult = "great"
	HitPerfect       HitResult = "perfect"
	HitLargeTickHit  HitResult = "large_tick_hit"
	HitSmallTickHit  HitResult = "small_tick_hit"
	HitSmallTickMiss HitResult = "small_tick_miss"
)

// HitCounts maps judgment kinds to non-negative counts for one play.
type HitCounts map[HitResult]int

// Judgments returns the judgment vocabulary of a mode, in scoring order
// from best to worst.
func (m Mode) Judgments() []HitResult {
	switch m {
	case ModeTaiko:
		return []HitResult{HitGreat, HitOk, HitMiss}
	case ModeCatch:
		return []HitResult{HitGreat, HitLargeTickHit, HitSmallTickHit, HitSmallTickMiss, HitMiss}
	case ModeMania:
		return []HitResult{HitPerfect, HitGreat, HitGood, HitOk, HitMeh, HitMiss}
	default:
		return []HitResult{HitGreat, HitOk, HitMeh, HitMiss}
	}
}
