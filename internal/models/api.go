package models

// CalculationRequest is the input bundle for a single calculation. Accuracy
// is a percentage (0-100) and defaults to 100 when omitted from JSON;
// callers decoding should seed the struct with that default before decoding.
type CalculationRequest struct {
	Path       string         `json:"path" validate:"required"`
	Mode       int            `json:"mode" validate:"gte=0,lte=3"`
	Mods       []string       `json:"mods"`
	Accuracy   float64        `json:"accuracy" validate:"gte=0,lte=100"`
	Combo      *int           `json:"combo" validate:"omitempty,gte=0"`
	Misses     int            `json:"misses" validate:"gte=0"`
	Score      *int64         `json:"score"`
	Statistics *HitStatistics `json:"statistics"`
}

// CalculationResult is the success shape returned by the calculator.
// StatsUsed surfaces the judgment breakdown that actually drove the score,
// whether explicit or simulated, for caller-side auditing.
type CalculationResult struct {
	Mode      int       `json:"mode"`
	Stars     float64   `json:"stars"`
	PP        float64   `json:"pp"`
	MaxCombo  int       `json:"max_combo"`
	StatsUsed HitCounts `json:"stats_used"`
}
