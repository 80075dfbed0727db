package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ldclash-backend/internal/models"
	"ldclash-backend/internal/prompt"
	"ldclash-backend/internal/validate"
)

// completer is the slice of the Gemini service the chat handler needs; tests
// substitute a fake.
type completer interface {
	Complete(ctx context.Context, bundle prompt.Bundle, maxTokens int32) (string, error)
}

type ChatHandler struct {
	gateway completer
	timeout time.Duration
}

func NewChatHandler(gateway completer, timeout time.Duration) *ChatHandler {
	return &ChatHandler{gateway: gateway, timeout: timeout}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	// Lenient parse: a body that is not valid JSON becomes an empty request
	// and surfaces as field errors from the validator.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = models.ChatRequest{}
	}

	mode, err := validate.Chat(&req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	spec := prompt.Spec(mode)
	bundle := prompt.Build(mode, &req)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	text, err := h.gateway.Complete(ctx, bundle, spec.MaxOutputTokens)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Text: text})
}
