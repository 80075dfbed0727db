package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"ldclash-backend/internal/middleware"
	"ldclash-backend/internal/models"
	"ldclash-backend/internal/services"
	"ldclash-backend/internal/validate"
)

type AuthHandler struct {
	sitePassword     string
	sitePasswordHash string
	sessions         *middleware.SessionAuth
	secureCookies    bool
}

func NewAuthHandler(sitePassword, sitePasswordHash string, sessions *middleware.SessionAuth, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		sitePassword:     sitePassword,
		sitePasswordHash: sitePasswordHash,
		sessions:         sessions,
		secureCookies:    secureCookies,
	}
}

// Login exchanges the shared site password for a signed session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = models.LoginRequest{}
	}

	if h.sitePassword == "" && h.sitePasswordHash == "" {
		writeJSON(w, http.StatusInternalServerError, errorResp("CONFIG_ERROR", "Site password is not configured", r))
		return
	}

	if !h.passwordMatches(req.Password) {
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", "Incorrect password", r))
		return
	}

	token, err := h.sessions.IssueToken()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create session", r))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(middleware.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// passwordMatches prefers the bcrypt hash when configured; the plaintext
// comparison is constant-time.
func (h *AuthHandler) passwordMatches(candidate string) bool {
	if h.sitePasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.sitePasswordHash), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(h.sitePassword)) == 1
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *validate.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", e.Fields, r))
	case *validate.PolicyError:
		writeJSON(w, http.StatusBadRequest, errorResp("POLICY_REJECTED", e.Message, r))
	case *services.UpstreamError:
		code := "UPSTREAM_ERROR"
		if e.Timeout {
			code = "UPSTREAM_TIMEOUT"
		}
		writeJSON(w, http.StatusInternalServerError, errorResp(code, e.Message, r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
