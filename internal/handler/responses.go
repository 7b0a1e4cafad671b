package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tolvmar/chestwarden/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first; headers are already sent, so an encode
	// failure can only be logged.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequest     = "Invalid request. Please check your inputs."

	ErrMsgPlayerNotFound   = "Player not found"
	ErrMsgStoreUnavailable = "Offline store is unavailable. Please try again later."
	ErrMsgCorruptRecord    = "Stored item data could not be decoded"
	ErrMsgInventoryFull    = "Inventory is full"
	ErrMsgSlotEmpty        = "That slot is empty"
	ErrMsgTargetOffline    = "Target player is offline"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages a caller can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgStoreUnavailable
	case errors.Is(err, domain.ErrCorruptRecord):
		return http.StatusInternalServerError, ErrMsgCorruptRecord
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusConflict, ErrMsgInventoryFull
	case errors.Is(err, domain.ErrSlotEmpty):
		return http.StatusConflict, ErrMsgSlotEmpty
	case errors.Is(err, domain.ErrTargetOffline):
		return http.StatusConflict, ErrMsgTargetOffline
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError maps a domain error and writes it as a JSON error.
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
