package domain

import (
	"context"
	"time"
)

// ModelRegistry is the static catalog of available models.
type ModelRegistry interface {
	// List returns all models. It never fails.
	List(ctx context.Context) []Model
}

// UsageCounter is a shared per-model, per-day request counter.
type UsageCounter interface {
	// Get returns the current count for model on day, 0 if absent.
	Get(ctx context.Context, model string, day time.Time) (int, error)

	// Increment atomically adds one and returns the new count.
	// The first increment of a key expires it at the next UTC midnight.
	Increment(ctx context.Context, model string, day time.Time) (int, error)
}

// TokenLedger is the per-user token economy.
type TokenLedger interface {
	// HasAtLeast evaluates a pre-flight balance check.
	HasAtLeast(ctx context.Context, user User, check BalanceCheck) (bool, error)

	// Debit atomically spends cost, tariff pool first.
	// It returns false without mutating anything when the balance is too low.
	Debit(ctx context.Context, user User, cost int) (bool, error)

	// Balance returns the current balance. Missing users have a zero balance.
	Balance(ctx context.Context, user User) (Balance, error)

	// Grant sets the tariff pool and adds to the extra pool.
	Grant(ctx context.Context, user User, tariff, extra int) error
}

// ModelSelector picks the next eligible model for an attempt.
type ModelSelector interface {
	// Pick returns false when no eligible model is left.
	Pick(ctx context.Context, needsImage bool, preferred Tier, tried TriedSet) (Model, bool)
}

// ProviderAdapter converts a call into raw provider output.
type ProviderAdapter interface {
	// Call sends the prompt and returns raw text and reported usage.
	// Every failure is returned as *ProviderError.
	Call(ctx context.Context, call *ProviderCall) (*ProviderResponse, error)

	// Name returns the provider identifier.
	Name() ProviderName
}

// AdapterRegistry resolves the adapter serving a provider.
type AdapterRegistry interface {
	// Register adds an adapter to the registry.
	Register(ctx context.Context, adapter ProviderAdapter) error

	// Get retrieves the adapter for a provider; unknown providers yield ErrAdapterNotFound.
	Get(ctx context.Context, provider ProviderName) (ProviderAdapter, error)

	// List returns all registered providers.
	List(ctx context.Context) ([]ProviderName, error)
}

// ResponseExtractor recovers structure from model text.
type ResponseExtractor interface {
	Extract(raw, desiredShape string, allowRepair bool) Extraction
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// StatsKind is the category of a recorded generation outcome.
type StatsKind string

const (
	StatsText   StatsKind = "text"
	StatsTokens StatsKind = "tokens"
)

// StatsRecorder aggregates daily generation outcomes.
type StatsRecorder interface {
	Record(ctx context.Context, kind StatsKind, success bool, detail string) error
}
