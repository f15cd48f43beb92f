package models

import (
	"encoding/json"
	"testing"
)

func TestHasValidHits(t *testing.T) {
	tests := []struct {
		name  string
		stats *HitStatistics
		want  bool
	}{
		{"Nil", nil, false},
		{"AllZero", &HitStatistics{}, false},
		{"GreatOnly", &HitStatistics{Great: 50}, true},
		{"MissOnly", &HitStatistics{Miss: 3}, true},
		{"LargeTickOnly", &HitStatistics{LargeTickHit: 10}, true},
		{"SmallTickOnlyIgnored", &HitStatistics{SmallTickHit: 40, SmallTickMiss: 2}, false},
		{"Negative", &HitStatistics{Great: -5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.HasValidHits(); got != tt.want {
				t.Errorf("HasValidHits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatisticsUnmarshal_NativeTypes(t *testing.T) {
	input := `{"great": 120, "ok": 8, "meh": 1, "miss": 2}`

	var s HitStatistics
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if s.Great != 120 {
		t.Errorf("Great = %d, want 120", s.Great)
	}
	if s.Miss != 2 {
		t.Errorf("Miss = %d, want 2", s.Miss)
	}
}

func TestStatisticsUnmarshal_StringCounts(t *testing.T) {
	input := `{"great": "120", "ok": "8.0", "perfect": "33", "large_tick_hit": "7", "miss": ""}`

	var s HitStatistics
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if s.Great != 120 {
		t.Errorf("Great = %d, want 120", s.Great)
	}
	if s.Ok != 8 {
		t.Errorf("Ok = %d, want 8", s.Ok)
	}
	if s.Perfect != 33 {
		t.Errorf("Perfect = %d, want 33", s.Perfect)
	}
	if s.LargeTickHit != 7 {
		t.Errorf("LargeTickHit = %d, want 7", s.LargeTickHit)
	}
	if s.Miss != 0 {
		t.Errorf("Miss = %d, want 0 for empty string", s.Miss)
	}
}

func TestStatisticsUnmarshal_UnknownKeysIgnored(t *testing.T) {
	input := `{"great": "10", "slider_tail_hit": "55"}`

	var s HitStatistics
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if s.Great != 10 {
		t.Errorf("Great = %d, want 10", s.Great)
	}
}

func TestParseMode(t *testing.T) {
	for code := 0; code <= 3; code++ {
		if _, err := ParseMode(code); err != nil {
			t.Errorf("ParseMode(%d) returned error: %v", code, err)
		}
	}
	for _, code := range []int{-1, 4, 99} {
		if _, err := ParseMode(code); err == nil {
			t.Errorf("ParseMode(%d) should have failed", code)
		}
	}
}

func TestModeJudgments(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{ModeOsu, 4},
		{ModeTaiko, 3},
		{ModeCatch, 5},
		{ModeMania, 6},
	}
	for _, tt := range tests {
		if got := len(tt.mode.Judgments()); got != tt.want {
			t.Errorf("%s judgments = %d, want %d", tt.mode, got, tt.want)
		}
	}
}
