package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventsphere/backend/internal/apperrors"
	"github.com/eventsphere/backend/internal/middleware"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies decoded by handlers
const maxBodyBytes = 1 << 20

// messageResponse is the body of every error and of plain acknowledgements
type messageResponse struct {
	Message string `json:"message"`
}

// BaseHandler holds the helpers shared by all handlers
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, messageResponse{Message: message})
}

// respondServiceError maps a service error onto its status and client message.
// The full error including its cause is logged; the client only sees the message.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	h.respondErrorWithStatus(w, r, apperrors.StatusCode(err), err)
}

func (h *BaseHandler) respondErrorWithStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	fields := []zap.Field{
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Warn("request rejected", fields...)
	}
	h.respondError(w, status, apperrors.PublicMessage(err))
}

// decodeJSON decodes the request body into dst.
// It writes the error response itself and reports whether decoding succeeded.
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		h.logger.Debug("failed to decode request body", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
