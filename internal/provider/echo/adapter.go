// Package echo provides an in-process adapter that answers every prompt
// with a JSON document describing the call. It makes no external API calls
// and gives deterministic responses for local development and tests.
package echo

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
)

// Responder builds the raw model text for a call.
type Responder func(call *domain.ProviderCall) string

// Adapter implements domain.ProviderAdapter without a remote service.
type Adapter struct {
	respond Responder
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithResponder replaces the default JSON echo.
func WithResponder(respond Responder) Option {
	return func(a *Adapter) {
		a.respond = respond
	}
}

// NewAdapter creates a new echo adapter.
// No configuration is required as this adapter operates entirely in-memory.
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{respond: echoJSON}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the provider identifier.
func (a *Adapter) Name() domain.ProviderName {
	return domain.ProviderEcho
}

// Call answers with the responder's text and a word-count token usage.
func (a *Adapter) Call(ctx context.Context, call *domain.ProviderCall) (*domain.ProviderResponse, error) {
	if call == nil {
		return nil, domain.NewProviderError(domain.ProviderEcho, "", errors.New("call cannot be nil"))
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(domain.ProviderEcho, call.Model.Name, err)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("echoing request")

	text := a.respond(call)

	// Echo returns roughly what it was given.
	promptTokens := countTokens(call.Prompt)
	completionTokens := countTokens(text)

	logger.Debug("echo completed",
		observability.Int("prompt_tokens", promptTokens),
		observability.Int("completion_tokens", completionTokens),
	)

	return &domain.ProviderResponse{
		Text:        text,
		TotalTokens: promptTokens + completionTokens,
		HasUsage:    true,
	}, nil
}

// echoJSON wraps the call in a fenced JSON document.
func echoJSON(call *domain.ProviderCall) string {
	doc, _ := json.Marshal(map[string]any{
		"model":     call.Model.Name,
		"prompt":    call.Prompt,
		"has_image": call.ImageData != "",
	})
	return "```json\n" + string(doc) + "\n```"
}

// countTokens performs simple word-based token counting.
func countTokens(content string) int {
	return len(strings.Fields(content))
}
