package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davidbz/lessongen/internal/observability"
)

const (
	// DefaultMaxAttempts bounds the number of models tried per call.
	DefaultMaxAttempts = 3

	// ApologyMessage is returned verbatim when every attempt failed.
	ApologyMessage = "All models are overloaded right now.\n" +
		"The error has already been reported to the developers.\n" +
		"Try one of the ready-made public lessons in the meantime - it is quick and convenient.\n"

	// InsufficientTokensMessage is returned verbatim when the balance does not cover a call.
	InsufficientTokensMessage = "Not enough tokens. Please top up your balance."

	// EmptyPromptMessage is returned verbatim for a request without a prompt.
	EmptyPromptMessage = "Empty request."
)

// Event types published by the orchestrator.
const (
	EventAttempt   = "generation.attempt"
	EventSucceeded = "generation.succeeded"
	EventFailed    = "generation.failed"
)

// Orchestrator turns a content request into structured data by trying
// eligible models in turn, metering tokens and repairing malformed output.
type Orchestrator struct {
	selector    ModelSelector
	adapters    AdapterRegistry
	ledger      TokenLedger
	usage       UsageCounter
	extractor   ResponseExtractor
	costs       CostCalculator
	events      EventPublisher
	stats       StatsRecorder
	maxAttempts int
	now         func() time.Time
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithMaxAttempts overrides the number of models tried per call.
func WithMaxAttempts(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithCostCalculator overrides how provider usage maps to ledger tokens.
func WithCostCalculator(costs CostCalculator) OrchestratorOption {
	return func(o *Orchestrator) {
		if costs != nil {
			o.costs = costs
		}
	}
}

// WithEventPublisher attaches an event publisher.
func WithEventPublisher(events EventPublisher) OrchestratorOption {
	return func(o *Orchestrator) {
		o.events = events
	}
}

// WithStatsRecorder attaches a daily statistics recorder.
func WithStatsRecorder(stats StatsRecorder) OrchestratorOption {
	return func(o *Orchestrator) {
		o.stats = stats
	}
}

// WithClock overrides the time source used for usage keys.
func WithClock(now func() time.Time) OrchestratorOption {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// NewOrchestrator creates a new orchestrator (DI constructor).
func NewOrchestrator(
	selector ModelSelector,
	adapters AdapterRegistry,
	ledger TokenLedger,
	usage UsageCounter,
	extractor ResponseExtractor,
	opts ...OrchestratorOption,
) *Orchestrator {
	o := &Orchestrator{
		selector:    selector,
		adapters:    adapters,
		ledger:      ledger,
		usage:       usage,
		extractor:   extractor,
		costs:       NewTokenCostCalculator(),
		maxAttempts: DefaultMaxAttempts,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// attemptStatus is the outcome of a single model attempt.
type attemptStatus int

const (
	attemptFailed attemptStatus = iota
	attemptSucceeded
	attemptInsufficientTokens
)

type attemptOutcome struct {
	status attemptStatus
	value  any
	err    error
}

// Generate produces a structured value for req or a message safe to show the user.
// It never returns an error; every path resolves to a Result.
func (o *Orchestrator) Generate(ctx context.Context, req *GenerationRequest) Result {
	if err := req.Validate(); err != nil {
		return Failure(ReasonInvalidRequest, EmptyPromptMessage)
	}

	ctx = observability.WithUserID(ctx, req.User.ID)
	logger := observability.FromContext(ctx)

	tier := req.Tier
	if !tier.Valid() {
		tier = TierBasic
	}
	needsImage := req.NeedsImage()

	logger.Info("generation started",
		observability.String("tier", string(tier)),
		observability.Bool("needs_image", needsImage),
		observability.Int("prompt_length", len(req.Prompt)))

	tried := make(TriedSet)
	reason := ReasonExhausted
	var lastErr error

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		model, ok := o.selector.Pick(ctx, needsImage, tier, tried)
		if !ok {
			if attempt == 1 {
				reason = ReasonNoEligibleModel
			}
			lastErr = ErrNoEligibleModel
			break
		}
		tried.Add(model.Name)

		outcome := o.attempt(ctx, req, model)
		o.publish(ctx, EventAttempt, map[string]interface{}{
			"attempt":  attempt,
			"model":    model.Name,
			"provider": string(model.Provider),
			"status":   outcome.status.String(),
			"error":    errString(outcome.err),
		})

		switch outcome.status {
		case attemptSucceeded:
			o.record(ctx, StatsText, true, "Successful generation")
			o.publish(ctx, EventSucceeded, map[string]interface{}{
				"model":    model.Name,
				"attempts": attempt,
			})
			return Success(outcome.value, model.Name)
		case attemptInsufficientTokens:
			o.publish(ctx, EventFailed, map[string]interface{}{
				"reason": string(ReasonInsufficientTokens),
			})
			return Failure(ReasonInsufficientTokens, InsufficientTokensMessage)
		case attemptFailed:
			lastErr = outcome.err
			logger.Warn("generation attempt failed, trying next model",
				observability.Int("attempt", attempt),
				observability.String("model", model.Name),
				observability.Error(outcome.err))
		}
	}

	logger.Error("generation exhausted",
		observability.String("reason", string(reason)),
		observability.Int("models_tried", len(tried)),
		observability.Error(lastErr))
	o.record(ctx, StatsText, false, "Unsuccessful generation")
	o.publish(ctx, EventFailed, map[string]interface{}{
		"reason":       string(reason),
		"models_tried": len(tried),
		"error":        errString(lastErr),
	})

	return Failure(reason, ApologyMessage)
}

// attempt runs one model through call, debit, extraction and the optional repair pass.
func (o *Orchestrator) attempt(ctx context.Context, req *GenerationRequest, model Model) attemptOutcome {
	ctx = observability.WithModel(observability.WithProvider(ctx, string(model.Provider)), model.Name)
	logger := observability.FromContext(ctx)

	adapter, err := o.adapters.Get(ctx, model.Provider)
	if err != nil {
		return attemptOutcome{status: attemptFailed, err: err}
	}

	allowed, err := o.ledger.HasAtLeast(ctx, req.User, BalanceCheck{Mode: AllowIfAuthenticated})
	if err != nil {
		return attemptOutcome{status: attemptFailed, err: fmt.Errorf("balance check failed: %w", err)}
	}
	if !allowed {
		o.record(ctx, StatsTokens, false, "User not authenticated")
		return attemptOutcome{status: attemptInsufficientTokens, err: ErrInsufficientTokens}
	}

	resp, err := adapter.Call(ctx, &ProviderCall{
		Model:     model,
		Prompt:    req.Prompt,
		ImageData: req.ImageData,
	})
	if err != nil {
		o.incrementUsage(ctx, model)
		return attemptOutcome{status: attemptFailed, err: err}
	}

	cost := o.costs.Calculate(resp)
	debited, err := o.ledger.Debit(ctx, req.User, cost)
	if err != nil {
		o.incrementUsage(ctx, model)
		return attemptOutcome{status: attemptFailed, err: fmt.Errorf("debit failed: %w", err)}
	}
	if !debited {
		logger.Info("token debit refused", observability.Int("cost", cost))
		o.record(ctx, StatsTokens, false, "Insufficient balance")
		return attemptOutcome{status: attemptInsufficientTokens, err: ErrInsufficientTokens}
	}
	o.incrementUsage(ctx, model)

	extraction := o.extractor.Extract(resp.Text, req.DesiredShape, true)
	if extraction.Kind == ExtractedRetryHint {
		logger.Info("model output unparseable, sending repair prompt")

		repaired, repairErr := adapter.Call(ctx, &ProviderCall{
			Model:  model,
			Prompt: extraction.Hint,
		})
		if repairErr != nil {
			return attemptOutcome{status: attemptFailed, err: repairErr}
		}
		extraction = o.extractor.Extract(repaired.Text, req.DesiredShape, false)
	}

	if !extraction.Structured() {
		return attemptOutcome{status: attemptFailed, err: ErrMalformedOutput}
	}

	logger.Info("generation attempt succeeded", observability.Int("cost", cost))
	return attemptOutcome{status: attemptSucceeded, value: extraction.Value}
}

// incrementUsage counts the attempt against the model's daily quota.
// Store failures are logged only; the call already happened.
func (o *Orchestrator) incrementUsage(ctx context.Context, model Model) {
	if _, err := o.usage.Increment(ctx, model.Name, o.now()); err != nil {
		observability.FromContext(ctx).Warn("failed to increment usage counter",
			observability.String("model", model.Name),
			observability.Bool("store_unavailable", errors.Is(err, ErrStoreUnavailable)),
			observability.Error(err))
	}
}

func (o *Orchestrator) record(ctx context.Context, kind StatsKind, success bool, detail string) {
	if o.stats == nil {
		return
	}
	if err := o.stats.Record(ctx, kind, success, detail); err != nil {
		observability.FromContext(ctx).Warn("failed to record generation stats",
			observability.String("kind", string(kind)),
			observability.Error(err))
	}
}

func (o *Orchestrator) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if o.events == nil {
		return
	}
	o.events.Publish(ctx, eventType, data)
}

func (s attemptStatus) String() string {
	switch s {
	case attemptSucceeded:
		return "succeeded"
	case attemptInsufficientTokens:
		return "insufficient_tokens"
	default:
		return "failed"
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
