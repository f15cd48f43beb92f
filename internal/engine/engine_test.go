package engine

import (
	"testing"

	"github.com/osukit/pp-api/internal/models"
	"github.com/osukit/pp-api/internal/rulesets"
)

func testChart(objects int, lengthMS float64) *rulesets.Chart {
	return &rulesets.Chart{
		Mode:         models.ModeOsu,
		ObjectCount:  objects,
		ComboObjects: objects,
		LengthMS:     lengthMS,
	}
}

func TestDifficultyEmptyChart(t *testing.T) {
	attrs, err := NewDifficultyCalculator().Calculate(testChart(0, 0), nil)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if attrs.StarRating != 0 || attrs.MaxCombo != 0 {
		t.Errorf("empty chart should have zero attributes, got %+v", attrs)
	}
}

func TestDifficultyModScaling(t *testing.T) {
	chart := testChart(500, 120000)
	rs, _ := rulesets.For(models.ModeOsu)

	calc := NewDifficultyCalculator()
	nomod, _ := calc.Calculate(chart, nil)
	if nomod.StarRating <= 0 {
		t.Fatalf("nomod stars = %v, want > 0", nomod.StarRating)
	}
	if nomod.MaxCombo != 500 {
		t.Errorf("MaxCombo = %d, want 500", nomod.MaxCombo)
	}

	dtMods, _ := rs.ResolveMods([]string{"DT"})
	dt, _ := calc.Calculate(chart, dtMods)
	if dt.StarRating <= nomod.StarRating {
		t.Errorf("DT stars (%v) should exceed nomod stars (%v)", dt.StarRating, nomod.StarRating)
	}

	htMods, _ := rs.ResolveMods([]string{"HT"})
	ht, _ := calc.Calculate(chart, htMods)
	if ht.StarRating >= nomod.StarRating {
		t.Errorf("HT stars (%v) should be below nomod stars (%v)", ht.StarRating, nomod.StarRating)
	}
}

func TestPerformanceOrdering(t *testing.T) {
	attrs := DifficultyAttributes{StarRating: 5.2, MaxCombo: 800, ObjectCount: 600}
	calc := NewPerformanceCalculator()

	ss := ScoreRecord{
		Mode: models.ModeOsu, MaxCombo: 800, Accuracy: 1,
		Statistics: models.HitCounts{models.HitGreat: 600},
	}
	ssPerf, err := calc.Calculate(ss, attrs)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if ssPerf.Total <= 0 {
		t.Fatalf("SS pp = %v, want > 0", ssPerf.Total)
	}

	missy := ScoreRecord{
		Mode: models.ModeOsu, MaxCombo: 400, Accuracy: 0.95,
		Statistics: models.HitCounts{models.HitGreat: 560, models.HitMiss: 10},
	}
	missyPerf, _ := calc.Calculate(missy, attrs)
	if missyPerf.Total >= ssPerf.Total {
		t.Errorf("10xMiss pp (%v) should be below SS pp (%v)", missyPerf.Total, ssPerf.Total)
	}
	if missyPerf.EffectiveMissCount < 10 {
		t.Errorf("EffectiveMissCount = %v, want >= 10", missyPerf.EffectiveMissCount)
	}
}

func TestPerformanceEmptyAttributes(t *testing.T) {
	perf, err := NewPerformanceCalculator().Calculate(ScoreRecord{}, DifficultyAttributes{})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if perf.Total != 0 {
		t.Errorf("pp for empty chart = %v, want 0", perf.Total)
	}
}

func TestBootstrapIdempotent(t *testing.T) {
	Bootstrap()
	first := DefaultDifficulty()
	Bootstrap()
	second := DefaultDifficulty()
	if first == nil || second == nil {
		t.Fatal("default calculators should be initialized")
	}
	if first != second {
		t.Error("Bootstrap should be init-once")
	}
}
