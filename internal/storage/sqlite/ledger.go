package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
)

// debitQuery drains tariff tokens first, then extra tokens, and matches no
// row when the total does not cover the cost. SET expressions see the
// pre-update row.
const debitQuery = `
	UPDATE user_token_balance
	SET tariff_tokens = max(0, tariff_tokens - ?2),
	    extra_tokens  = extra_tokens - max(0, ?2 - tariff_tokens),
	    updated_at    = CURRENT_TIMESTAMP
	WHERE user_id = ?1 AND tariff_tokens + extra_tokens >= ?2
`

const grantQuery = `
	INSERT INTO user_token_balance (user_id, tariff_tokens, extra_tokens)
	VALUES (?1, ?2, ?3)
	ON CONFLICT (user_id) DO UPDATE
	SET tariff_tokens = excluded.tariff_tokens,
	    extra_tokens  = user_token_balance.extra_tokens + excluded.extra_tokens,
	    updated_at    = CURRENT_TIMESTAMP
`

// Ledger implements domain.TokenLedger on SQLite.
type Ledger struct {
	db *DB
}

// NewLedger creates a ledger backed by db.
func NewLedger(db *DB) *Ledger {
	return &Ledger{db: db}
}

// Balance returns the user's balance; a missing row is a zero balance.
func (l *Ledger) Balance(ctx context.Context, user domain.User) (domain.Balance, error) {
	var b domain.Balance
	err := l.db.QueryRowContext(ctx,
		"SELECT tariff_tokens, extra_tokens FROM user_token_balance WHERE user_id = ?", user.ID,
	).Scan(&b.TariffTokens, &b.ExtraTokens)
	if errors.Is(err, sql.ErrNoRows) {
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

// Debit removes cost from the user's balance in a single conditional
// update. It returns false without changes when the balance is too low
// or the user has no balance row.
func (l *Ledger) Debit(ctx context.Context, user domain.User, cost int) (bool, error) {
	if cost < 0 {
		return false, nil
	}

	res, err := l.db.ExecContext(ctx, debitQuery, user.ID, cost)
	if err != nil {
		return false, fmt.Errorf("%w: debit: %w", domain.ErrStoreUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: debit result: %w", domain.ErrStoreUnavailable, err)
	}

	if affected == 0 {
		return false, nil
	}

	observability.FromContext(ctx).Debug("tokens debited", observability.Int("cost", cost))
	return true, nil
}

// Grant sets the user's tariff tokens and adds extra tokens, creating the
// row if needed.
func (l *Ledger) Grant(ctx context.Context, user domain.User, tariff, extra int) error {
	if tariff < 0 || extra < 0 {
		return fmt.Errorf("grant amounts must be non-negative: tariff=%d extra=%d", tariff, extra)
	}

	if _, err := l.db.ExecContext(ctx, grantQuery, user.ID, tariff, extra); err != nil {
		return fmt.Errorf("%w: grant: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
