// Package calc orchestrates a full calculation: decode the chart, resolve
// mods, compute difficulty, reconstruct the judgment breakdown and score it.
package calc

import (
	"bytes"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/osukit/pp-api/internal/beatmap"
	"github.com/osukit/pp-api/internal/engine"
	"github.com/osukit/pp-api/internal/models"
	"github.com/osukit/pp-api/internal/rulesets"
	"github.com/osukit/pp-api/internal/simulate"
)

// Service runs calculations. Implementations are stateless across calls and
// safe for concurrent use.
type Service interface {
	Calculate(ctx context.Context, req models.CalculationRequest) (*models.CalculationResult, error)
}

// AttributeCache caches difficulty attributes keyed by chart hash, mode and
// mods. A nil cache disables caching; lookups that fail fall through
// silently to a fresh computation.
type AttributeCache interface {
	GetDifficulty(ctx context.Context, key string) (*engine.DifficultyAttributes, bool)
	SetDifficulty(ctx context.Context, key string, attrs engine.DifficultyAttributes)
}

type Config struct {
	Difficulty  engine.DifficultyCalculator
	Performance engine.PerformanceCalculator
	Cache       AttributeCache
	MapsDir     string
	Logger      *zap.Logger
}

type service struct {
	difficulty  engine.DifficultyCalculator
	performance engine.PerformanceCalculator
	cache       AttributeCache
	mapsDir     string
	logger      *zap.SugaredLogger
}

func New(cfg Config) Service {
	if cfg.Difficulty == nil {
		cfg.Difficulty = engine.DefaultDifficulty()
	}
	if cfg.Performance == nil {
		cfg.Performance = engine.DefaultPerformance()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &service{
		difficulty:  cfg.Difficulty,
		performance: cfg.Performance,
		cache:       cfg.Cache,
		mapsDir:     cfg.MapsDir,
		logger:      cfg.Logger.Sugar(),
	}
}

// Calculate runs the whole pipeline for one request. Collaborator panics
// are recovered at this boundary and surfaced as a calculation error.
func (s *service) Calculate(ctx context.Context, req models.CalculationRequest) (result *models.CalculationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorw("calculation panicked", "path", req.Path, "panic", r)
			result = nil
			err = &Error{CodeCalculationFailed, fmt.Sprintf("calculation failed: %v", r)}
		}
	}()

	path := req.Path
	if s.mapsDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.mapsDir, path)
	}
	absPath, absErr := filepath.Abs(path)
	if absErr != nil {
		absPath = path
	}
	if _, statErr := os.Stat(absPath); statErr != nil {
		return nil, &Error{CodeFileNotFound, "file not found: " + absPath}
	}

	mode, modeErr := models.ParseMode(req.Mode)
	if modeErr != nil {
		return nil, &Error{CodeInvalidMode, modeErr.Error()}
	}
	ruleset, rsErr := rulesets.For(mode)
	if rsErr != nil {
		return nil, &Error{CodeInvalidMode, rsErr.Error()}
	}

	// Read through an explicit handle so the release path is uniform across
	// success, decode failure and early returns.
	f, openErr := os.Open(absPath)
	if openErr != nil {
		return nil, &Error{CodeCalculationFailed, "open beatmap: " + openErr.Error()}
	}
	defer f.Close()

	raw, readErr := io.ReadAll(f)
	if readErr != nil {
		return nil, &Error{CodeCalculationFailed, "read beatmap: " + readErr.Error()}
	}

	chart, decodeErr := beatmap.Decode(bytes.NewReader(raw))
	if decodeErr != nil {
		return nil, &Error{CodeCalculationFailed, "decode beatmap: " + decodeErr.Error()}
	}
	converted := ruleset.Convert(chart)

	mods, unknown := ruleset.ResolveMods(req.Mods)
	for _, acronym := range unknown {
		s.logger.Warnw("mod not recognized, skipping", "mod", acronym, "mode", mode.String())
	}

	attrs, diffErr := s.difficultyAttributes(ctx, raw, converted, mods, req.Mods)
	if diffErr != nil {
		return nil, &Error{CodeCalculationFailed, "difficulty calculation: " + diffErr.Error()}
	}

	effectiveMisses := simulate.EffectiveMissCount(req.Statistics, req.Misses)

	simReq := simulate.Request{
		Mode:         mode,
		Accuracy:     req.Accuracy,
		TotalObjects: converted.ObjectCount,
		Misses:       effectiveMisses,
		Score:        req.Score,
	}
	if mode == models.ModeCatch {
		counts := simulate.CountCatchObjects(converted.CatchObjects)
		simReq.Catch = &counts
	}
	stats := simulate.Resolve(simReq, req.Statistics)

	combo := attrs.MaxCombo
	if req.Combo != nil {
		combo = *req.Combo
	}
	score := engine.ScoreRecord{
		Mode:       mode,
		MaxCombo:   combo,
		Accuracy:   req.Accuracy / 100,
		Mods:       mods,
		Statistics: stats,
	}

	perf, perfErr := s.performance.Calculate(score, attrs)
	if perfErr != nil {
		return nil, &Error{CodeCalculationFailed, "performance calculation: " + perfErr.Error()}
	}

	return &models.CalculationResult{
		Mode:      int(mode),
		Stars:     attrs.StarRating,
		PP:        perf.Total,
		MaxCombo:  attrs.MaxCombo,
		StatsUsed: stats,
	}, nil
}

// difficultyAttributes computes (or recalls) the difficulty attributes for
// one chart + mod combination.
func (s *service) difficultyAttributes(ctx context.Context, raw []byte, chart *rulesets.Chart, mods []rulesets.Mod, acronyms []string) (engine.DifficultyAttributes, error) {
	key := ""
	if s.cache != nil {
		key = attributeKey(raw, chart.Mode, acronyms)
		if cached, ok := s.cache.GetDifficulty(ctx, key); ok {
			return *cached, nil
		}
	}

	attrs, err := s.difficulty.Calculate(chart, mods)
	if err != nil {
		return engine.DifficultyAttributes{}, err
	}

	if s.cache != nil {
		s.cache.SetDifficulty(ctx, key, attrs)
	}
	return attrs, nil
}

func attributeKey(raw []byte, mode models.Mode, acronyms []string) string {
	sorted := make([]string, len(acronyms))
	for i, a := range acronyms {
		sorted[i] = strings.ToUpper(a)
	}
	sort.Strings(sorted)
	return fmt.Sprintf("diff:%x:%d:%s", md5.Sum(raw), int(mode), strings.Join(sorted, ","))
}
