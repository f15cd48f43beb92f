// Package store persists calculation results and caches difficulty
// attributes. Both backends are optional; the service runs fully in-memory
// without them.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgPool defines the interface for the PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Score is one archived calculation result.
type Score struct {
	ID         uuid.UUID `json:"id"`
	Mode       int       `json:"mode"`
	Beatmap    string    `json:"beatmap"`
	Accuracy   float64   `json:"accuracy"`
	Misses     int       `json:"misses"`
	MaxCombo   int       `json:"max_combo"`
	Stars      float64   `json:"stars"`
	PP         float64   `json:"pp"`
	Simulated  bool      `json:"simulated"`
	CreatedAt  time.Time `json:"created_at"`
}

// Archive stores calculation results.
type Archive interface {
	InsertScores(ctx context.Context, scores []Score) error
	RecentScores(ctx context.Context, limit int) ([]Score, error)
}

type postgresArchive struct {
	pg PgPool
}

func NewPostgresArchive(pg PgPool) Archive {
	return &postgresArchive{pg: pg}
}

func (a *postgresArchive) InsertScores(ctx context.Context, scores []Score) error {
	for _, s := range scores {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		_, err := a.pg.Exec(ctx, `
			INSERT INTO scores (id, mode, beatmap, accuracy, misses, max_combo, stars, pp, simulated, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			s.ID, s.Mode, s.Beatmap, s.Accuracy, s.Misses, s.MaxCombo, s.Stars, s.PP, s.Simulated, s.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert score %s: %w", s.ID, err)
		}
	}
	return nil
}

func (a *postgresArchive) RecentScores(ctx context.Context, limit int) ([]Score, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	rows, err := a.pg.Query(ctx, `
		SELECT id, mode, beatmap, accuracy, misses, max_combo, stars, pp, simulated, created_at
		FROM scores
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var s Score
		if err := rows.Scan(&s.ID, &s.Mode, &s.Beatmap, &s.Accuracy, &s.Misses,
			&s.MaxCombo, &s.Stars, &s.PP, &s.Simulated, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
