// Package groq provides an adapter for Groq-hosted models using the official
// OpenAI SDK against Groq's OpenAI-compatible endpoint.
package groq

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
	"github.com/davidbz/lessongen/internal/provider/image"
)

const (
	defaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultMaxTokens   = 8191
	defaultTemperature = 0.85
	defaultTopP        = 0.9
)

// DefaultParams returns the sampling parameters used when a call carries none.
func DefaultParams() domain.GenerationParams {
	return domain.GenerationParams{
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
	}
}

// Adapter implements domain.ProviderAdapter for Groq.
type Adapter struct {
	client  openai.Client
	images  *image.Loader
	limiter *rate.Limiter
}

// NewAdapter creates a new Groq adapter.
func NewAdapter(config Config, images *image.Loader) (*Adapter, error) {
	if config.APIKey == "" {
		return nil, errors.New("Groq API key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(max(config.MaxRetries, 0)),
		option.WithRequestTimeout(config.RequestTimeout()),
	}

	if images == nil {
		images = image.NewLoader()
	}

	return &Adapter{
		client:  openai.NewClient(opts...),
		images:  images,
		limiter: newLimiter(config.RequestsPerSecond, config.Burst),
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
	return domain.ProviderGroq
}

// Call sends a chat completion request and returns the full response.
func (a *Adapter) Call(ctx context.Context, call *domain.ProviderCall) (*domain.ProviderResponse, error) {
	if call == nil {
		return nil, domain.NewProviderError(domain.ProviderGroq, "", errors.New("call cannot be nil"))
	}

	model := call.Model.Name
	logger := observability.FromContext(ctx)

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, domain.NewProviderError(domain.ProviderGroq, model, fmt.Errorf("rate limiter: %w", err))
	}

	logger.Debug("calling Groq API")

	resp, err := a.client.Chat.Completions.New(ctx, a.toSDKParams(ctx, call))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			logger.Error("Groq API call failed",
				observability.Int("status", apiErr.StatusCode),
				observability.Error(err))
		} else {
			logger.Error("Groq API call failed", observability.Error(err))
		}
		return nil, domain.NewProviderError(domain.ProviderGroq, model, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, domain.NewProviderError(domain.ProviderGroq, model, errors.New("empty response"))
	}

	logger.Debug("Groq API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return &domain.ProviderResponse{
		Text:        resp.Choices[0].Message.Content,
		TotalTokens: int(resp.Usage.TotalTokens),
		HasUsage:    resp.Usage.TotalTokens > 0,
	}, nil
}

// toSDKParams converts a provider call to SDK ChatCompletionNewParams.
func (a *Adapter) toSDKParams(ctx context.Context, call *domain.ProviderCall) openai.ChatCompletionNewParams {
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(call.Prompt),
	}

	if call.ImageData != "" {
		img, err := a.images.Load(ctx, call.ImageData)
		if err != nil {
			observability.FromContext(ctx).Warn("image unavailable, sending text only", observability.Error(err))
		} else {
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: image.DataURI(img),
			}))
		}
	}

	p := DefaultParams()
	if call.Params != nil {
		p = *call.Params
	}

	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(call.Model.Name),
		Messages: []openai.ChatCompletionMessageParamUnion{{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfArrayOfContentParts: parts,
				},
			},
		}},
		MaxTokens:   openai.Int(int64(p.MaxTokens)),
		Temperature: openai.Float(p.Temperature),
		TopP:        openai.Float(p.TopP),
	}
}
