package echo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/extract"
	"github.com/davidbz/lessongen/internal/provider/echo"
)

func echoCall(prompt string) *domain.ProviderCall {
	return &domain.ProviderCall{
		Model:  domain.Model{Name: "echo-basic", Provider: domain.ProviderEcho, Tier: domain.TierBasic},
		Prompt: prompt,
	}
}

func TestNewAdapter(t *testing.T) {
	adapter := echo.NewAdapter()

	require.NotNil(t, adapter)
	require.Equal(t, domain.ProviderEcho, adapter.Name())
}

func TestCall_Success(t *testing.T) {
	adapter := echo.NewAdapter()

	resp, err := adapter.Call(context.Background(), echoCall("Hello world"))

	require.NoError(t, err)
	require.True(t, resp.HasUsage)
	require.Greater(t, resp.TotalTokens, 2)

	extraction := extract.NewExtractor().Extract(resp.Text, "JSON {}", false)
	require.True(t, extraction.Structured())
	require.Equal(t, map[string]any{
		"model":     "echo-basic",
		"prompt":    "Hello world",
		"has_image": false,
	}, extraction.Value)
}

func TestCall_CustomResponder(t *testing.T) {
	adapter := echo.NewAdapter(echo.WithResponder(func(call *domain.ProviderCall) string {
		return "no json for " + call.Model.Name
	}))

	resp, err := adapter.Call(context.Background(), echoCall("anything"))

	require.NoError(t, err)
	require.Equal(t, "no json for echo-basic", resp.Text)
	require.Equal(t, 5, resp.TotalTokens) // 1 prompt word + 4 completion words
}

func TestCall_NilCall(t *testing.T) {
	adapter := echo.NewAdapter()

	resp, err := adapter.Call(context.Background(), nil)

	require.Error(t, err)
	require.Nil(t, resp)
	require.Contains(t, err.Error(), "call cannot be nil")
}

func TestCall_CancelledContext(t *testing.T) {
	adapter := echo.NewAdapter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.Call(ctx, echoCall("hi"))

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	require.ErrorIs(t, err, context.Canceled)
}
