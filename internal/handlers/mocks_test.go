package handlers

import (
	"context"
	"sync"

	"github.com/osukit/pp-api/internal/calc"
	"github.com/osukit/pp-api/internal/models"
	"github.com/osukit/pp-api/internal/store"
)

// MockCalculator implements calc.Service for testing
type MockCalculator struct {
	CalculateFunc func(ctx context.Context, req models.CalculationRequest) (*models.CalculationResult, error)
}

func (m *MockCalculator) Calculate(ctx context.Context, req models.CalculationRequest) (*models.CalculationResult, error) {
	if m.CalculateFunc != nil {
		return m.CalculateFunc(ctx, req)
	}
	return &models.CalculationResult{
		Mode:      req.Mode,
		Stars:     5,
		PP:        123.4,
		MaxCombo:  100,
		StatsUsed: models.HitCounts{models.HitGreat: 100},
	}, nil
}

var _ calc.Service = (*MockCalculator)(nil)

// MockQueue implements ArchiveQueue for testing
type MockQueue struct {
	mu     sync.Mutex
	scores []store.Score
	full   bool
}

func (m *MockQueue) Enqueue(score store.Score) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.full {
		return false
	}
	m.scores = append(m.scores, score)
	return true
}

func (m *MockQueue) QueueDepth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.scores)
}

// MockArchive implements store.Archive for testing
type MockArchive struct {
	RecentScoresFunc func(ctx context.Context, limit int) ([]store.Score, error)
}

func (m *MockArchive) InsertScores(ctx context.Context, scores []store.Score) error {
	return nil
}

func (m *MockArchive) RecentScores(ctx context.Context, limit int) ([]store.Score, error) {
	if m.RecentScoresFunc != nil {
		return m.RecentScoresFunc(ctx, limit)
	}
	return nil, nil
}
