package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable indicates a usage or ledger store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrQuotaExceeded indicates a model reached its daily ceiling.
	ErrQuotaExceeded = errors.New("daily quota exceeded")

	// ErrInsufficientTokens indicates the user's balance does not cover the cost.
	ErrInsufficientTokens = errors.New("insufficient tokens")

	// ErrMalformedOutput indicates extraction failed after the repair round-trip.
	ErrMalformedOutput = errors.New("malformed model output")

	// ErrNoEligibleModel indicates the selector has nothing left to try.
	ErrNoEligibleModel = errors.New("no eligible model")

	// ErrEmptyPrompt indicates a request without a prompt.
	ErrEmptyPrompt = errors.New("empty prompt")

	// ErrAdapterNotFound indicates no adapter is registered for a provider.
	ErrAdapterNotFound = errors.New("adapter not found")
)

// ProviderError is any network, authentication or remote failure of an adapter.
type ProviderError struct {
	Provider ProviderName
	Model    string
	Err      error
}

// NewProviderError wraps err for provider and model.
func NewProviderError(provider ProviderName, model string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Model: model, Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider error (model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
