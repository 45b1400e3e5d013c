// Package google provides a Gemini adapter built on the Google GenAI SDK.
package google

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
	"github.com/davidbz/lessongen/internal/provider/image"
)

const (
	defaultMaxOutputTokens = 2000
	defaultTemperature     = 0.7
	defaultTopP            = 0.8
)

// DefaultParams returns the sampling parameters used when a call carries none.
func DefaultParams() domain.GenerationParams {
	return domain.GenerationParams{
		MaxTokens:   defaultMaxOutputTokens,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
	}
}

// Adapter implements domain.ProviderAdapter for Gemini models.
type Adapter struct {
	client  *genai.Client
	images  *image.Loader
	limiter *rate.Limiter
	timeout time.Duration
}

// NewAdapter creates a Gemini adapter.
func NewAdapter(ctx context.Context, config Config, images *image.Loader) (*Adapter, error) {
	if config.APIKey == "" {
		return nil, errors.New("Google API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	if images == nil {
		images = image.NewLoader()
	}

	return &Adapter{
		client:  client,
		images:  images,
		limiter: newLimiter(config.RequestsPerSecond, config.Burst),
		timeout: config.RequestTimeout(),
	}, nil
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), max(burst, 1))
}

// Name returns the provider identifier.
func (a *Adapter) Name() domain.ProviderName {
	return domain.ProviderGoogle
}

// Call sends the prompt, and the image when one resolves, to the model.
func (a *Adapter) Call(ctx context.Context, call *domain.ProviderCall) (*domain.ProviderResponse, error) {
	if call == nil {
		return nil, domain.NewProviderError(domain.ProviderGoogle, "", errors.New("call cannot be nil"))
	}

	model := call.Model.Name
	logger := observability.FromContext(ctx)

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, domain.NewProviderError(domain.ProviderGoogle, model, fmt.Errorf("rate limiter: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	parts := []*genai.Part{{Text: call.Prompt}}
	if call.ImageData != "" {
		img, err := a.images.Load(ctx, call.ImageData)
		if err != nil {
			logger.Warn("image unavailable, sending text only", observability.Error(err))
		} else {
			parts = append(parts, &genai.Part{InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType}})
		}
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	logger.Debug("calling Gemini API", observability.Int("parts", len(parts)))

	resp, err := a.client.Models.GenerateContent(ctx, model, contents, generateConfig(call.Params))
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			logger.Error("Gemini API call failed",
				observability.Int("status", apiErr.Code),
				observability.Error(err))
		} else {
			logger.Error("Gemini API call failed", observability.Error(err))
		}
		return nil, domain.NewProviderError(domain.ProviderGoogle, model, err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, domain.NewProviderError(domain.ProviderGoogle, model, errors.New("empty response"))
	}

	out := &domain.ProviderResponse{Text: text}
	if resp.UsageMetadata != nil && resp.UsageMetadata.TotalTokenCount > 0 {
		out.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
		out.HasUsage = true
	}

	logger.Debug("Gemini API call succeeded", observability.Int("total_tokens", out.TotalTokens))

	return out, nil
}

func generateConfig(params *domain.GenerationParams) *genai.GenerateContentConfig {
	p := DefaultParams()
	if params != nil {
		p = *params
	}

	temperature := float32(p.Temperature)
	topP := float32(p.TopP)

	return &genai.GenerateContentConfig{
		MaxOutputTokens: int32(p.MaxTokens), //nolint:gosec // bounded by configuration
		Temperature:     &temperature,
		TopP:            &topP,
	}
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
