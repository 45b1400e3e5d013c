package domain

import "time"

const (
	// DefaultTokensPerUnit is how many provider tokens make one ledger token.
	DefaultTokensPerUnit = 100

	// DefaultMissingUsageCost is charged when the provider reports no usage.
	DefaultMissingUsageCost = 1
)

// CostCalculator converts provider usage into a ledger debit.
type CostCalculator interface {
	// Calculate returns the number of ledger tokens to debit.
	Calculate(resp *ProviderResponse) int
}

// TokenCostCalculator charges ceil(totalTokens / TokensPerUnit).
type TokenCostCalculator struct {
	TokensPerUnit    int
	MissingUsageCost int
}

// NewTokenCostCalculator creates a calculator with the default rates.
func NewTokenCostCalculator() *TokenCostCalculator {
	return &TokenCostCalculator{
		TokensPerUnit:    DefaultTokensPerUnit,
		MissingUsageCost: DefaultMissingUsageCost,
	}
}

// Calculate returns the ledger cost of a provider response.
func (c *TokenCostCalculator) Calculate(resp *ProviderResponse) int {
	perUnit := c.TokensPerUnit
	if perUnit <= 0 {
		perUnit = DefaultTokensPerUnit
	}

	floor := c.MissingUsageCost
	if floor <= 0 {
		floor = DefaultMissingUsageCost
	}

	if resp == nil || !resp.HasUsage || resp.TotalTokens <= 0 {
		return floor
	}

	return (resp.TotalTokens + perUnit - 1) / perUnit
}

// UsageDay truncates t to its UTC calendar day.
func UsageDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// UntilNextUTCMidnight returns the time left in t's UTC day, at least one second.
func UntilNextUTCMidnight(t time.Time) time.Duration {
	next := UsageDay(t).AddDate(0, 0, 1)
	d := next.Sub(t.UTC())
	if d < time.Second {
		return time.Second
	}
	return d
}

// UsageKey formats the counter key for model on day.
func UsageKey(model string, day time.Time) string {
	return "usage:" + model + ":" + UsageDay(day).Format(time.DateOnly)
}
