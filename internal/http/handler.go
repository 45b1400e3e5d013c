package http

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
)

// Generator runs a generation request to a terminal result.
type Generator interface {
	Generate(ctx context.Context, req *domain.GenerationRequest) domain.Result
}

// Handler handles HTTP requests from trusted internal workers.
// Requests name the user to debit, so the API must not be exposed publicly.
type Handler struct {
	generator Generator
	ledger    domain.TokenLedger
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(generator Generator, ledger domain.TokenLedger) *Handler {
	return &Handler{
		generator: generator,
		ledger:    ledger,
	}
}

// GenerateRequest is the wire form of a generation request.
type GenerateRequest struct {
	UserID        int64  `json:"user_id"`
	Authenticated bool   `json:"authenticated"`
	Prompt        string `json:"prompt"`
	DesiredShape  string `json:"desired_shape"`
	ImageData     string `json:"image_data,omitempty"`
	Tier          string `json:"tier"`
}

// GenerateResponse is returned for every processed request, successful or not.
type GenerateResponse struct {
	OK      bool                 `json:"ok"`
	Value   any                  `json:"value,omitempty"`
	Model   string               `json:"model,omitempty"`
	Reason  domain.FailureReason `json:"reason,omitempty"`
	Message string               `json:"message,omitempty"`
}

// BalanceResponse is the wire form of a user's balance.
type BalanceResponse struct {
	UserID       int64 `json:"user_id"`
	TariffTokens int   `json:"tariff_tokens"`
	ExtraTokens  int   `json:"extra_tokens"`
	Total        int   `json:"total"`
}

// HandleGenerate runs one generation request.
// Terminal failures are reported with status 200 and "ok": false.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// A JSON content type forces a CORS preflight on browser requests.
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		http.Error(w, "content type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var body GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	ctx = observability.WithUserID(ctx, body.UserID)

	logger := observability.FromContext(ctx)
	logger.Info("generation request received",
		zap.String("tier", body.Tier),
		zap.Bool("has_image", body.ImageData != ""),
	)

	result := h.generator.Generate(ctx, &domain.GenerationRequest{
		User:         domain.User{ID: body.UserID, Authenticated: body.Authenticated},
		Prompt:       body.Prompt,
		DesiredShape: body.DesiredShape,
		ImageData:    body.ImageData,
		Tier:         domain.ParseTier(body.Tier),
	})

	if result.OK() {
		logger.Info("generation succeeded", zap.String("model", result.Model))
	} else {
		logger.Warn("generation failed", zap.String("reason", string(result.Reason)))
	}

	writeJSON(ctx, w, http.StatusOK, GenerateResponse{
		OK:      result.OK(),
		Value:   result.Value,
		Model:   result.Model,
		Reason:  result.Reason,
		Message: result.Message,
	})
}

// HandleBalance returns the balance of the user named by the user_id query parameter.
func (h *Handler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		http.Error(w, "user_id must be an integer", http.StatusBadRequest)
		return
	}

	ctx = observability.WithUserID(ctx, userID)

	balance, err := h.ledger.Balance(ctx, domain.User{ID: userID, Authenticated: true})
	if err != nil {
		observability.FromContext(ctx).Error("balance lookup failed", zap.Error(err))
		http.Error(w, "balance unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(ctx, w, http.StatusOK, BalanceResponse{
		UserID:       userID,
		TariffTokens: balance.TariffTokens,
		ExtraTokens:  balance.ExtraTokens,
		Total:        balance.Total(),
	})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(err))
	}
}
