package routing

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
)

const (
	// DefaultPrimaryWeight is the probability of restricting a pick to the
	// primary provider when it has candidates.
	DefaultPrimaryWeight = 0.70
	// DefaultUsageReadRetries is how many extra reads a failed usage Get gets.
	DefaultUsageReadRetries = 2
)

// Random is the randomness a Selector draws from.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int   { return rand.IntN(n) }

// Selector implements domain.ModelSelector.
type Selector struct {
	registry         domain.ModelRegistry
	usage            domain.UsageCounter
	adapters         domain.AdapterRegistry
	primary          domain.ProviderName
	primaryWeight    float64
	usageReadRetries int
	random           Random
	now              func() time.Time
}

// Option configures a Selector.
type Option func(*Selector)

// WithPrimaryProvider sets the provider the selection is biased towards.
func WithPrimaryProvider(provider domain.ProviderName) Option {
	return func(s *Selector) {
		s.primary = provider
	}
}

// WithPrimaryWeight sets the bias probability, clamped to [0, 1].
func WithPrimaryWeight(weight float64) Option {
	return func(s *Selector) {
		s.primaryWeight = min(max(weight, 0), 1)
	}
}

// WithUsageReadRetries sets how many times a failed usage read is retried.
func WithUsageReadRetries(retries int) Option {
	return func(s *Selector) {
		s.usageReadRetries = max(retries, 0)
	}
}

// WithAdapters restricts selection to models whose provider has a registered adapter.
func WithAdapters(adapters domain.AdapterRegistry) Option {
	return func(s *Selector) {
		s.adapters = adapters
	}
}

// WithRandom injects the randomness source.
func WithRandom(random Random) Option {
	return func(s *Selector) {
		s.random = random
	}
}

// WithClock overrides the time source used to pick the usage day.
func WithClock(now func() time.Time) Option {
	return func(s *Selector) {
		s.now = now
	}
}

// NewSelector creates a selector over the models in registry.
func NewSelector(registry domain.ModelRegistry, usage domain.UsageCounter, opts ...Option) *Selector {
	s := &Selector{
		registry:         registry,
		usage:            usage,
		primary:          domain.ProviderGoogle,
		primaryWeight:    DefaultPrimaryWeight,
		usageReadRetries: DefaultUsageReadRetries,
		random:           globalRandom{},
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick chooses a model for the next attempt. Candidates of the preferred
// tier are considered first, then those of the other tier. It returns
// false when no model is eligible.
func (s *Selector) Pick(
	ctx context.Context,
	needsImage bool,
	preferred domain.Tier,
	tried domain.TriedSet,
) (domain.Model, bool) {
	logger := observability.FromContext(ctx)
	day := domain.UsageDay(s.now())

	for _, tier := range []domain.Tier{preferred, preferred.Other()} {
		candidates := s.candidates(ctx, tier, needsImage, tried, day)
		if len(candidates) == 0 {
			continue
		}

		model := s.choose(candidates)
		logger.Debug("model selected",
			observability.String("model", model.Name),
			observability.String("provider", string(model.Provider)),
			observability.String("tier", string(tier)),
			observability.Int("candidates", len(candidates)))
		return model, true
	}

	logger.Warn("no eligible model",
		observability.Bool("needs_image", needsImage),
		observability.String("preferred_tier", string(preferred)),
		observability.Int("tried", len(tried)))
	return domain.Model{}, false
}

func (s *Selector) candidates(
	ctx context.Context,
	tier domain.Tier,
	needsImage bool,
	tried domain.TriedSet,
	day time.Time,
) []domain.Model {
	var out []domain.Model
	for _, model := range s.registry.List(ctx) {
		if model.Tier != tier || tried.Has(model.Name) {
			continue
		}
		if needsImage && !model.SupportsImage {
			continue
		}
		if !s.servable(ctx, model) {
			continue
		}
		if !s.underLimit(ctx, model, day) {
			continue
		}
		out = append(out, model)
	}
	return out
}

// servable reports whether an adapter is registered for the model's provider.
func (s *Selector) servable(ctx context.Context, model domain.Model) bool {
	if s.adapters == nil {
		return true
	}
	_, err := s.adapters.Get(ctx, model.Provider)
	return err == nil
}

// underLimit reports whether model has quota left today. A usage store
// that keeps failing after the retries counts as no quota left.
func (s *Selector) underLimit(ctx context.Context, model domain.Model, day time.Time) bool {
	var (
		count int
		err   error
	)
	for range s.usageReadRetries + 1 {
		count, err = s.usage.Get(ctx, model.Name, day)
		if err == nil {
			return count < model.DailyLimit
		}
	}

	observability.FromContext(ctx).Error("usage read failed, excluding model",
		observability.String("model", model.Name),
		observability.Error(err))
	return false
}

func (s *Selector) choose(candidates []domain.Model) domain.Model {
	if s.random.Float64() < s.primaryWeight {
		var primary []domain.Model
		for _, model := range candidates {
			if model.Provider == s.primary {
				primary = append(primary, model)
			}
		}
		if len(primary) > 0 {
			return primary[s.random.IntN(len(primary))]
		}
	}
	return candidates[s.random.IntN(len(candidates))]
}
