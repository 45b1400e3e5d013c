package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
)

// Ledger implements domain.TokenLedger on PostgreSQL.
type Ledger struct {
	pool *pgxpool.Pool
}

// NewLedger creates a ledger backed by pool.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

// Balance returns the user's balance; a missing row is a zero balance.
func (l *Ledger) Balance(ctx context.Context, user domain.User) (domain.Balance, error) {
	var b domain.Balance
	err := l.pool.QueryRow(ctx, queryBalance, user.ID).Scan(&b.TariffTokens, &b.ExtraTokens)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Balance{}, nil
	}
	if err != nil {
		return domain.Balance{}, fmt.Errorf("%w: read balance: %w", domain.ErrStoreUnavailable, err)
	}
	return b, nil
}

// HasAtLeast evaluates check against the user's current balance.
func (l *Ledger) HasAtLeast(ctx context.Context, user domain.User, check domain.BalanceCheck) (bool, error) {
	if !check.NeedsBalance(user) {
		return check.Passes(user, domain.Balance{}), nil
	}

	b, err := l.Balance(ctx, user)
	if err != nil {
		return false, err
	}
	return check.Passes(user, b), nil
}

// Debit removes cost from the user's balance, tariff tokens first. The row
// is locked for the duration of the transaction; an insufficient balance
// returns false and leaves it untouched.
func (l *Ledger) Debit(ctx context.Context, user domain.User, cost int) (bool, error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, fmt.Errorf("%w: begin transaction: %w", domain.ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current domain.Balance
	err = tx.QueryRow(ctx, queryBalanceForUpdate, user.ID).Scan(&current.TariffTokens, &current.ExtraTokens)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: lock balance: %w", domain.ErrStoreUnavailable, err)
	}

	next, ok := current.Drain(cost)
	if !ok {
		return false, nil
	}

	if _, err := tx.Exec(ctx, queryUpdateBalance, user.ID, next.TariffTokens, next.ExtraTokens); err != nil {
		return false, fmt.Errorf("%w: update balance: %w", domain.ErrStoreUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("%w: commit debit: %w", domain.ErrStoreUnavailable, err)
	}

	observability.FromContext(ctx).Debug("tokens debited",
		observability.Int("cost", cost),
		observability.Int("tariff_tokens", next.TariffTokens),
		observability.Int("extra_tokens", next.ExtraTokens))

	return true, nil
}

// Grant sets the user's tariff tokens and adds extra tokens, creating the
// row if needed.
func (l *Ledger) Grant(ctx context.Context, user domain.User, tariff, extra int) error {
	if tariff < 0 || extra < 0 {
		return fmt.Errorf("grant amounts must be non-negative: tariff=%d extra=%d", tariff, extra)
	}

	if _, err := l.pool.Exec(ctx, queryGrant, user.ID, tariff, extra); err != nil {
		return fmt.Errorf("%w: grant: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
