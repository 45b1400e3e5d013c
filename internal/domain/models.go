package domain

import "strings"

// Tier is the request-quality class used to bias model selection.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// ParseTier converts a raw tier name. Unknown values fall back to basic.
func ParseTier(s string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierPremium:
		return TierPremium
	default:
		return TierBasic
	}
}

// Other returns the fallback tier.
func (t Tier) Other() Tier {
	if t == TierPremium {
		return TierBasic
	}
	return TierPremium
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierBasic || t == TierPremium
}

// ProviderName identifies an LLM vendor adapter.
type ProviderName string

const (
	ProviderGoogle ProviderName = "google"
	ProviderGroq   ProviderName = "groq"
	ProviderEcho   ProviderName = "echo" // in-process adapter for local development
)

// Valid reports whether p is a known provider.
func (p ProviderName) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderGroq, ProviderEcho:
		return true
	default:
		return false
	}
}

// Model is an immutable catalog entry.
type Model struct {
	Name          string       `json:"name"           yaml:"name"`
	Provider      ProviderName `json:"provider"       yaml:"provider"`
	Tier          Tier         `json:"tier"           yaml:"tier"`
	SupportsImage bool         `json:"supports_image" yaml:"supports_image"`
	DailyLimit    int          `json:"daily_limit"    yaml:"daily_limit"`
}

// User is the caller on whose behalf tokens are debited.
type User struct {
	ID            int64 `json:"id"`
	Authenticated bool  `json:"authenticated"`
}

// Balance is a user's token economy: plan-allocated and purchased pools.
type Balance struct {
	TariffTokens int `json:"tariff_tokens"`
	ExtraTokens  int `json:"extra_tokens"`
}

// Total returns the spendable amount.
func (b Balance) Total() int {
	return b.TariffTokens + b.ExtraTokens
}

// Drain returns the balance after spending cost, tariff pool first.
// ok is false, and b is returned unchanged, when the balance does not cover cost.
func (b Balance) Drain(cost int) (Balance, bool) {
	if cost < 0 || b.TariffTokens < 0 || b.ExtraTokens < 0 {
		return b, false
	}
	if b.Total() < cost {
		return b, false
	}

	if b.TariffTokens >= cost {
		return Balance{TariffTokens: b.TariffTokens - cost, ExtraTokens: b.ExtraTokens}, true
	}

	remaining := cost - b.TariffTokens
	return Balance{TariffTokens: 0, ExtraTokens: b.ExtraTokens - remaining}, true
}

// CheckMode selects how HasAtLeast evaluates a balance.
type CheckMode int

const (
	// CheckMinimum requires the total balance to be at least Min.
	CheckMinimum CheckMode = iota
	// AllowIfAuthenticated passes every authenticated user regardless of balance.
	AllowIfAuthenticated
)

// BalanceCheck is the pre-flight condition evaluated before a provider call.
type BalanceCheck struct {
	Mode CheckMode
	Min  int
}

// NeedsBalance reports whether evaluating the check requires a balance read.
func (c BalanceCheck) NeedsBalance(user User) bool {
	return user.Authenticated && c.Mode == CheckMinimum
}

// Passes evaluates the check. Unauthenticated users never pass.
func (c BalanceCheck) Passes(user User, b Balance) bool {
	if !user.Authenticated {
		return false
	}
	if c.Mode == AllowIfAuthenticated {
		return true
	}
	return b.Total() >= c.Min
}

// GenerationRequest is a single content request from the host application.
type GenerationRequest struct {
	User         User   `json:"user"`
	Prompt       string `json:"prompt"`
	DesiredShape string `json:"desired_shape"`
	ImageData    string `json:"image_data,omitempty"` // data URI, bare base64 or http(s) URL
	Tier         Tier   `json:"tier"`
}

// Validate rejects requests without a prompt.
func (r *GenerationRequest) Validate() error {
	if r == nil || strings.TrimSpace(r.Prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// NeedsImage reports whether the request carries image input.
func (r *GenerationRequest) NeedsImage() bool {
	return strings.TrimSpace(r.ImageData) != ""
}

// GenerationParams are sampling parameters forwarded to a provider.
type GenerationParams struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Image is decoded image input ready to attach to a provider call.
type Image struct {
	Data     []byte
	MIMEType string
}

// ProviderCall is one request to a provider adapter.
type ProviderCall struct {
	Model     Model
	Prompt    string
	ImageData string
	Params    *GenerationParams // nil means adapter defaults
}

// ProviderResponse is raw provider output plus the provider's own accounting.
type ProviderResponse struct {
	Text        string
	TotalTokens int
	HasUsage    bool
}

// TriedSet tracks models already attempted within one Generate call.
type TriedSet map[string]struct{}

// Add marks a model as tried.
func (s TriedSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether a model was already tried.
func (s TriedSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// ExtractionKind tags an Extraction.
type ExtractionKind int

const (
	ExtractedRaw ExtractionKind = iota
	ExtractedValue
	ExtractedRetryHint
)

// Extraction is the outcome of recovering structure from model text.
type Extraction struct {
	Kind  ExtractionKind
	Value any    // map[string]any or []any when Kind == ExtractedValue
	Hint  string // repair prompt when Kind == ExtractedRetryHint
	Raw   string // unchanged input when Kind == ExtractedRaw
}

// Structured reports whether the extraction produced an object or array.
func (e Extraction) Structured() bool {
	if e.Kind != ExtractedValue {
		return false
	}
	switch e.Value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// ResultKind tags a Result.
type ResultKind int

const (
	ResultFailure ResultKind = iota
	ResultValue
)

// FailureReason explains a terminal failure.
type FailureReason string

const (
	ReasonNone               FailureReason = ""
	ReasonInsufficientTokens FailureReason = "insufficient_tokens"
	ReasonExhausted          FailureReason = "exhausted"
	ReasonNoEligibleModel    FailureReason = "no_eligible_model"
	ReasonInvalidRequest     FailureReason = "invalid_request"
)

// Result is what Generate hands back: a structured value or a user-safe message.
type Result struct {
	Kind    ResultKind    `json:"-"`
	Value   any           `json:"value,omitempty"`
	Message string        `json:"message,omitempty"`
	Reason  FailureReason `json:"reason,omitempty"`
	Model   string        `json:"model,omitempty"`
}

// OK reports whether the result carries a structured value.
func (r Result) OK() bool {
	return r.Kind == ResultValue
}

// Success wraps a structured value produced by model.
func Success(value any, model string) Result {
	return Result{Kind: ResultValue, Value: value, Model: model}
}

// Failure builds a terminal failure result.
func Failure(reason FailureReason, message string) Result {
	return Result{Kind: ResultFailure, Reason: reason, Message: message}
}
