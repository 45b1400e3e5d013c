package google_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/provider/google"
	"github.com/davidbz/lessongen/internal/provider/image"
)

// geminiServer records request bodies and replies with a canned response.
type geminiServer struct {
	*httptest.Server

	mu     sync.Mutex
	bodies []string
	status int
	reply  string
}

func newGeminiServer(t *testing.T, status int, reply string) *geminiServer {
	t.Helper()

	s := &geminiServer{status: status, reply: reply}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.bodies = append(s.bodies, string(body))
		s.mu.Unlock()

		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = io.WriteString(w, s.reply)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *geminiServer) lastBody() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bodies) == 0 {
		return ""
	}
	return s.bodies[len(s.bodies)-1]
}

const okReply = `{
	"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"title\": \"Cats\"}"}]}}],
	"usageMetadata": {"promptTokenCount": 50, "candidatesTokenCount": 201, "totalTokenCount": 251}
}`

func newAdapter(t *testing.T, baseURL string) *google.Adapter {
	t.Helper()

	adapter, err := google.NewAdapter(context.Background(), google.Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Timeout: 5,
	}, image.NewLoader())
	require.NoError(t, err)
	return adapter
}

func testCall(prompt, imageData string) *domain.ProviderCall {
	return &domain.ProviderCall{
		Model:     domain.Model{Name: "gemini-2.0-flash", Provider: domain.ProviderGoogle, Tier: domain.TierBasic},
		Prompt:    prompt,
		ImageData: imageData,
	}
}

func TestNewAdapter_MissingAPIKey(t *testing.T) {
	adapter, err := google.NewAdapter(context.Background(), google.Config{}, nil)

	require.Error(t, err)
	require.Nil(t, adapter)
	require.Contains(t, err.Error(), "Google API key is required")
}

func TestAdapter_Name(t *testing.T) {
	server := newGeminiServer(t, http.StatusOK, okReply)
	require.Equal(t, domain.ProviderGoogle, newAdapter(t, server.URL).Name())
}

func TestAdapter_Call(t *testing.T) {
	server := newGeminiServer(t, http.StatusOK, okReply)
	adapter := newAdapter(t, server.URL)

	resp, err := adapter.Call(context.Background(), testCall("Write a lesson title", ""))

	require.NoError(t, err)
	require.Equal(t, `{"title": "Cats"}`, resp.Text)
	require.True(t, resp.HasUsage)
	require.Equal(t, 251, resp.TotalTokens)

	body := server.lastBody()
	require.Contains(t, body, "Write a lesson title")
	require.Contains(t, body, "maxOutputTokens")
	require.NotContains(t, body, "inlineData")
}

func TestAdapter_CallWithImage(t *testing.T) {
	server := newGeminiServer(t, http.StatusOK, okReply)
	adapter := newAdapter(t, server.URL)
	png := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))

	_, err := adapter.Call(context.Background(), testCall("Describe the picture", "data:image/png;base64,"+png))

	require.NoError(t, err)
	body := server.lastBody()
	require.Contains(t, body, "inlineData")
	require.Contains(t, body, "image/png")
}

func TestAdapter_BrokenImageFallsBackToText(t *testing.T) {
	server := newGeminiServer(t, http.StatusOK, okReply)
	adapter := newAdapter(t, server.URL)

	resp, err := adapter.Call(context.Background(), testCall("Describe the picture", "data:image/png;base64,%%%"))

	require.NoError(t, err)
	require.NotEmpty(t, resp.Text)
	require.NotContains(t, server.lastBody(), "inlineData")
}

func TestAdapter_CallErrors(t *testing.T) {
	t.Run("api error is a provider error", func(t *testing.T) {
		server := newGeminiServer(t, http.StatusBadRequest,
			`{"error": {"code": 400, "message": "bad request", "status": "INVALID_ARGUMENT"}}`)
		adapter := newAdapter(t, server.URL)

		resp, err := adapter.Call(context.Background(), testCall("hi", ""))

		require.Nil(t, resp)
		var providerErr *domain.ProviderError
		require.True(t, errors.As(err, &providerErr))
		require.Equal(t, domain.ProviderGoogle, providerErr.Provider)
		require.Equal(t, "gemini-2.0-flash", providerErr.Model)
	})

	t.Run("empty candidates is a provider error", func(t *testing.T) {
		server := newGeminiServer(t, http.StatusOK, `{"candidates": []}`)
		adapter := newAdapter(t, server.URL)

		_, err := adapter.Call(context.Background(), testCall("hi", ""))

		var providerErr *domain.ProviderError
		require.True(t, errors.As(err, &providerErr))
	})

	t.Run("missing usage is reported as such", func(t *testing.T) {
		server := newGeminiServer(t, http.StatusOK,
			`{"candidates": [{"content": {"role": "model", "parts": [{"text": "[1]"}]}}]}`)
		adapter := newAdapter(t, server.URL)

		resp, err := adapter.Call(context.Background(), testCall("hi", ""))

		require.NoError(t, err)
		require.False(t, resp.HasUsage)
	})

	t.Run("nil call", func(t *testing.T) {
		server := newGeminiServer(t, http.StatusOK, okReply)
		adapter := newAdapter(t, server.URL)

		_, err := adapter.Call(context.Background(), nil)

		var providerErr *domain.ProviderError
		require.True(t, errors.As(err, &providerErr))
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := newGeminiServer(t, http.StatusOK, okReply)
		adapter := newAdapter(t, server.URL)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := adapter.Call(ctx, testCall("hi", ""))

		var providerErr *domain.ProviderError
		require.True(t, errors.As(err, &providerErr))
	})
}

func TestDefaultParams(t *testing.T) {
	params := google.DefaultParams()

	require.Equal(t, 2000, params.MaxTokens)
	require.InDelta(t, 0.7, params.Temperature, 1e-9)
	require.InDelta(t, 0.8, params.TopP, 1e-9)
}
