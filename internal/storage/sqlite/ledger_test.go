package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/storage/sqlite"
)

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLedger_Debit(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: 1, Authenticated: true}

	tests := []struct {
		name     string
		tariff   int
		extra    int
		cost     int
		expectOK bool
		expected domain.Balance
	}{
		{
			name: "tariff covers cost", tariff: 10, extra: 5, cost: 4,
			expectOK: true, expected: domain.Balance{TariffTokens: 6, ExtraTokens: 5},
		},
		{
			name: "tariff drained before extra", tariff: 3, extra: 10, cost: 5,
			expectOK: true, expected: domain.Balance{TariffTokens: 0, ExtraTokens: 8},
		},
		{
			name: "exact total", tariff: 2, extra: 3, cost: 5,
			expectOK: true, expected: domain.Balance{},
		},
		{
			name: "insufficient leaves balance untouched", tariff: 2, extra: 2, cost: 5,
			expectOK: false, expected: domain.Balance{TariffTokens: 2, ExtraTokens: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := sqlite.NewLedger(openTestDB(t))
			require.NoError(t, ledger.Grant(ctx, user, tt.tariff, tt.extra))

			ok, err := ledger.Debit(ctx, user, tt.cost)
			require.NoError(t, err)
			require.Equal(t, tt.expectOK, ok)

			balance, err := ledger.Balance(ctx, user)
			require.NoError(t, err)
			require.Equal(t, tt.expected, balance)
		})
	}
}

func TestLedger_MissingRowIsZeroBalance(t *testing.T) {
	ctx := context.Background()
	ledger := sqlite.NewLedger(openTestDB(t))
	user := domain.User{ID: 404, Authenticated: true}

	balance, err := ledger.Balance(ctx, user)
	require.NoError(t, err)
	require.Equal(t, domain.Balance{}, balance)

	ok, err := ledger.Debit(ctx, user, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLedger_Grant(t *testing.T) {
	ctx := context.Background()
	ledger := sqlite.NewLedger(openTestDB(t))
	user := domain.User{ID: 5, Authenticated: true}

	require.NoError(t, ledger.Grant(ctx, user, 100, 20))
	require.NoError(t, ledger.Grant(ctx, user, 50, 5))

	balance, err := ledger.Balance(ctx, user)
	require.NoError(t, err)
	require.Equal(t, domain.Balance{TariffTokens: 50, ExtraTokens: 25}, balance)

	require.Error(t, ledger.Grant(ctx, user, -1, 0))
}

func TestLedger_HasAtLeast(t *testing.T) {
	ctx := context.Background()
	ledger := sqlite.NewLedger(openTestDB(t))
	authenticated := domain.User{ID: 1, Authenticated: true}
	anonymous := domain.User{ID: 2}

	require.NoError(t, ledger.Grant(ctx, authenticated, 0, 3))
	require.NoError(t, ledger.Grant(ctx, anonymous, 100, 0))

	tests := []struct {
		name     string
		user     domain.User
		check    domain.BalanceCheck
		expected bool
	}{
		{"minimum met", authenticated, domain.BalanceCheck{Mode: domain.CheckMinimum, Min: 3}, true},
		{"minimum not met", authenticated, domain.BalanceCheck{Mode: domain.CheckMinimum, Min: 4}, false},
		{"authenticated bypass", authenticated, domain.BalanceCheck{Mode: domain.AllowIfAuthenticated}, true},
		{"anonymous with balance", anonymous, domain.BalanceCheck{Mode: domain.CheckMinimum, Min: 1}, false},
		{"anonymous bypass", anonymous, domain.BalanceCheck{Mode: domain.AllowIfAuthenticated}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := ledger.HasAtLeast(ctx, tt.user, tt.check)
			require.NoError(t, err)
			require.Equal(t, tt.expected, ok)
		})
	}
}

func TestLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	ledger := sqlite.NewLedger(openTestDB(t))
	user := domain.User{ID: 9, Authenticated: true}
	require.NoError(t, ledger.Grant(ctx, user, 7, 8))

	const workers = 40
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int64
	)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			ok, err := ledger.Debit(ctx, user, 1)
			assert.NoError(t, err)
			if ok {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(15), succeeded.Load())
	balance, err := ledger.Balance(ctx, user)
	require.NoError(t, err)
	require.Equal(t, domain.Balance{}, balance)
}

func TestStatsRecorder(t *testing.T) {
	ctx := context.Background()
	recorder := sqlite.NewStatsRecorder(openTestDB(t))

	require.NoError(t, recorder.Record(ctx, domain.StatsText, true, "Successful generation"))
	require.NoError(t, recorder.Record(ctx, domain.StatsText, true, "Successful generation"))
	require.NoError(t, recorder.Record(ctx, domain.StatsText, false, "Unsuccessful generation"))
	require.NoError(t, recorder.Record(ctx, domain.StatsTokens, false, "Insufficient balance"))

	rows, err := recorder.Since(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byDetail := make(map[string]sqlite.DailyStats)
	for _, row := range rows {
		byDetail[row.Detail] = row
	}

	require.Equal(t, 2, byDetail["Successful generation"].Successful)
	require.Equal(t, 1, byDetail["Unsuccessful generation"].Unsuccessful)
	require.Equal(t, domain.StatsTokens, byDetail["Insufficient balance"].Kind)
	require.Equal(t, 1, byDetail["Insufficient balance"].Unsuccessful)
}
