package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidbz/lessongen/internal/domain"
)

// StatsRecorder implements domain.StatsRecorder on PostgreSQL.
type StatsRecorder struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewStatsRecorder creates a recorder backed by pool.
func NewStatsRecorder(pool *pgxpool.Pool) *StatsRecorder {
	return &StatsRecorder{pool: pool, now: time.Now}
}

// Record bumps today's success or failure counter for kind and detail.
func (s *StatsRecorder) Record(ctx context.Context, kind domain.StatsKind, success bool, detail string) error {
	successful, unsuccessful := 0, 1
	if success {
		successful, unsuccessful = 1, 0
	}

	day := domain.UsageDay(s.now())
	if _, err := s.pool.Exec(ctx, queryRecordStats, day, string(kind), detail, successful, unsuccessful); err != nil {
		return fmt.Errorf("failed to record %s stats: %w", kind, err)
	}
	return nil
}
