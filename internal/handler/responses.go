package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Vcvzgbzz/goodieBag/internal/cooldown"
	"github.com/Vcvzgbzz/goodieBag/internal/domain"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error string `json:"error"`
	// RetryAfter is set on cooldown refusals, in whole seconds
	RetryAfter int `json:"retryAfter,omitempty"`
}

// Generic user-facing messages
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequest     = "Missing or invalid parameters."
)

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondText sends a plain-text sentence for textMode callers
func respondText(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(message)); err != nil {
		slog.Error("Failed to write text response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondFailure delivers a refusal in the caller's preferred mode. Chat
// overlays cannot render error bodies, so textMode refusals go out as a
// normal 200 sentence; JSON callers get the proper status code.
func respondFailure(w http.ResponseWriter, text bool, status int, message string) {
	if text {
		respondText(w, message)
		return
	}
	respondError(w, status, message)
}

// mapServiceError converts a service error to an HTTP status and a fallback
// user message. Handlers phrase their own messages for the errors where the
// response contract has a specific sentence; this covers the rest.
func mapServiceError(err error) (int, string) {
	var onCooldown cooldown.ErrOnCooldown
	switch {
	case errors.As(err, &onCooldown):
		return http.StatusTooManyRequests, onCooldown.Error()
	case errors.Is(err, domain.ErrNoItems):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidBoxType):
		return http.StatusBadRequest, "Invalid lootbox rarity type"
	case errors.Is(err, domain.ErrInvalidChannel):
		return http.StatusBadRequest, "Invalid channel ID"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
