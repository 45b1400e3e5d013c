package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/davidbz/lessongen/internal/domain"
)

const recordStatsQuery = `
	INSERT INTO generation_stats (day, kind, detail, successful, unsuccessful)
	VALUES (?1, ?2, ?3, ?4, ?5)
	ON CONFLICT (day, kind, detail) DO UPDATE
	SET successful   = generation_stats.successful + excluded.successful,
	    unsuccessful = generation_stats.unsuccessful + excluded.unsuccessful
`

// StatsRecorder implements domain.StatsRecorder on SQLite.
type StatsRecorder struct {
	db  *DB
	now func() time.Time
}

// NewStatsRecorder creates a recorder backed by db.
func NewStatsRecorder(db *DB) *StatsRecorder {
	return &StatsRecorder{db: db, now: time.Now}
}

// Record bumps today's success or failure counter for kind and detail.
func (s *StatsRecorder) Record(ctx context.Context, kind domain.StatsKind, success bool, detail string) error {
	successful, unsuccessful := 0, 1
	if success {
		successful, unsuccessful = 1, 0
	}

	day := domain.UsageDay(s.now()).Format(time.DateOnly)
	if _, err := s.db.ExecContext(ctx, recordStatsQuery, day, string(kind), detail, successful, unsuccessful); err != nil {
		return fmt.Errorf("failed to record %s stats: %w", kind, err)
	}
	return nil
}

// DailyStats is one aggregated statistics row.
type DailyStats struct {
	Day          string
	Kind         domain.StatsKind
	Detail       string
	Successful   int
	Unsuccessful int
}

// Since returns the rows recorded on or after day, oldest first.
func (s *StatsRecorder) Since(ctx context.Context, day time.Time) ([]DailyStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, kind, detail, successful, unsuccessful
		FROM generation_stats
		WHERE day >= ?
		ORDER BY day, kind, detail`,
		domain.UsageDay(day).Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var out []DailyStats
	for rows.Next() {
		var st DailyStats
		var kind string
		if err := rows.Scan(&st.Day, &kind, &st.Detail, &st.Successful, &st.Unsuccessful); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		st.Kind = domain.StatsKind(kind)
		out = append(out, st)
	}
	return out, rows.Err()
}
