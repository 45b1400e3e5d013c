package groq_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/provider/groq"
	"github.com/davidbz/lessongen/internal/provider/image"
)

type chatServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []map[string]any
	status   int
	reply    string
}

func newChatServer(t *testing.T, status int, reply string) *chatServer {
	t.Helper()

	s := &chatServer{status: status, reply: reply}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}

		var body map[string]any
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		s.mu.Lock()
		s.requests = append(s.requests, body)
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = io.WriteString(w, s.reply)
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *chatServer) last(t *testing.T) map[string]any {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests)
	return s.requests[len(s.requests)-1]
}

const okReply = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "llama-3.3-70b-versatile",
	"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "[{\"q\": \"2+2\"}]"}}],
	"usage": {"prompt_tokens": 20, "completion_tokens": 180, "total_tokens": 200}
}`

func newAdapter(t *testing.T, baseURL string) *groq.Adapter {
	t.Helper()

	adapter, err := groq.NewAdapter(groq.Config{
		APIKey:     "gsk-test",
		BaseURL:    baseURL,
		Timeout:    5,
		MaxRetries: 0,
	}, image.NewLoader())
	require.NoError(t, err)
	return adapter
}

func testCall(imageData string) *domain.ProviderCall {
	return &domain.ProviderCall{
		Model:     domain.Model{Name: "llama-3.3-70b-versatile", Provider: domain.ProviderGroq, Tier: domain.TierBasic},
		Prompt:    "Make a quiz",
		ImageData: imageData,
	}
}

func TestNewAdapter_MissingAPIKey(t *testing.T) {
	adapter, err := groq.NewAdapter(groq.Config{}, nil)

	require.Error(t, err)
	require.Nil(t, adapter)
	require.Contains(t, err.Error(), "Groq API key is required")
}

func TestAdapter_Name(t *testing.T) {
	adapter, err := groq.NewAdapter(groq.Config{APIKey: "gsk-test"}, nil)
	require.NoError(t, err)

	require.Equal(t, domain.ProviderGroq, adapter.Name())
}

func TestAdapter_Call(t *testing.T) {
	server := newChatServer(t, http.StatusOK, okReply)
	adapter := newAdapter(t, server.URL)

	resp, err := adapter.Call(context.Background(), testCall(""))

	require.NoError(t, err)
	require.Equal(t, `[{"q": "2+2"}]`, resp.Text)
	require.Equal(t, 200, resp.TotalTokens)
	require.True(t, resp.HasUsage)

	body := server.last(t)
	require.Equal(t, "llama-3.3-70b-versatile", body["model"])
	require.InDelta(t, 8191, body["max_tokens"], 0)
	require.InDelta(t, 0.85, body["temperature"], 1e-9)
	require.InDelta(t, 0.9, body["top_p"], 1e-9)
}

func TestAdapter_CallWithParams(t *testing.T) {
	server := newChatServer(t, http.StatusOK, okReply)
	adapter := newAdapter(t, server.URL)
	call := testCall("")
	call.Params = &domain.GenerationParams{MaxTokens: 100, Temperature: 0.1, TopP: 0.5}

	_, err := adapter.Call(context.Background(), call)

	require.NoError(t, err)
	body := server.last(t)
	require.InDelta(t, 100, body["max_tokens"], 0)
	require.InDelta(t, 0.1, body["temperature"], 1e-9)
}

func TestAdapter_CallWithImage(t *testing.T) {
	server := newChatServer(t, http.StatusOK, okReply)
	adapter := newAdapter(t, server.URL)
	jpeg := base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10})

	_, err := adapter.Call(context.Background(), testCall(jpeg))
	require.NoError(t, err)

	messages, ok := server.last(t)["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)

	content := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 2)

	imagePart := content[1].(map[string]any)
	require.Equal(t, "image_url", imagePart["type"])
	url := imagePart["image_url"].(map[string]any)["url"].(string)
	require.Equal(t, "data:image/jpeg;base64,"+jpeg, url)
}

func TestAdapter_CallErrors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		server := newChatServer(t, http.StatusBadRequest,
			`{"error": {"message": "model not found", "type": "invalid_request_error"}}`)
		adapter := newAdapter(t, server.URL)

		resp, err := adapter.Call(context.Background(), testCall(""))

		require.Nil(t, resp)
		var providerErr *domain.ProviderError
		require.True(t, errors.As(err, &providerErr))
		require.Equal(t, domain.ProviderGroq, providerErr.Provider)
		require.Equal(t, "llama-3.3-70b-versatile", providerErr.Model)
	})

	t.Run("no choices", func(t *testing.T) {
		server := newChatServer(t, http.StatusOK,
			`{"id": "x", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`)
		adapter := newAdapter(t, server.URL)

		_, err := adapter.Call(context.Background(), testCall(""))

		var providerErr *domain.ProviderError
		require.True(t, errors.As(err, &providerErr))
	})

	t.Run("nil call", func(t *testing.T) {
		adapter := newAdapter(t, "http://127.0.0.1:1")

		_, err := adapter.Call(context.Background(), nil)

		require.Error(t, err)
		require.Contains(t, err.Error(), "call cannot be nil")
	})
}
