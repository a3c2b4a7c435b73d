package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/eventsphere/backend/internal/apperrors"
	authmw "github.com/eventsphere/backend/internal/auth/middleware"
	"github.com/eventsphere/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RegistrationService is the interface that wraps methods for event registration business logic.
type RegistrationService interface {
	// Method Register records userID as attending eventID and returns the registration id.
	//
	// If the pair is already registered, a conflict error will be returned together with 0.
	Register(ctx context.Context, eventID, userID int) (int, error)
	// Method Unregister removes the registration of userID for eventID.
	//
	// If there is no such registration, a not found error will be returned.
	Unregister(ctx context.Context, eventID, userID int) error
	// Method ListByEvent returns every registration of eventID with the registered users, newest first.
	ListByEvent(ctx context.Context, eventID int) ([]models.EventRegistrant, error)
	// Method ListByUser returns every registration of userID with the events, newest first.
	ListByUser(ctx context.Context, userID int) ([]models.UserRegistration, error)
}

// RegistrationHandler handles event registration HTTP requests
type RegistrationHandler struct {
	BaseHandler
	registrationService RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationService RegistrationService, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         BaseHandler{logger: logger},
		registrationService: registrationService,
	}
}

// RegisterRoutes registers all registration routes.
// requireAuth guards the caller's own operations, requireStaff guards the event roster.
func (h *RegistrationHandler) RegisterRoutes(r chi.Router, requireAuth, requireStaff func(http.Handler) http.Handler) {
	r.Route("/registrations", func(r chi.Router) {
		r.With(requireAuth).Get("/me", h.ListMine)
		r.With(requireAuth).Post("/{eventId}/register", h.Register)
		r.With(requireAuth).Delete("/{eventId}/unregister", h.Unregister)
		r.With(requireStaff).Get("/{eventId}", h.ListByEvent)
	})
}

// Register handles POST /api/registrations/{eventId}/register
// @Summary Register for an event
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} models.RegisterResponse
// @Failure 400 {object} messageResponse "Already registered or invalid event id"
// @Failure 401 {object} messageResponse "No token provided or invalid token"
// @Failure 404 {object} messageResponse "Event not found"
// @Failure 500 {object} messageResponse "Internal server error"
// @Router /registrations/{eventId}/register [post]
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := h.eventAndCaller(w, r)
	if !ok {
		return
	}

	id, err := h.registrationService.Register(r.Context(), eventID, userID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.RegisterResponse{Message: "Registered successfully", ID: id})
}

// Unregister handles DELETE /api/registrations/{eventId}/unregister
// @Summary Cancel an event registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} messageResponse "Unregistered successfully"
// @Failure 400 {object} messageResponse "Invalid event id"
// @Failure 401 {object} messageResponse "No token provided or invalid token"
// @Failure 404 {object} messageResponse "Registration not found"
// @Failure 500 {object} messageResponse "Internal server error"
// @Router /registrations/{eventId}/unregister [delete]
func (h *RegistrationHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := h.eventAndCaller(w, r)
	if !ok {
		return
	}

	if err := h.registrationService.Unregister(r.Context(), eventID, userID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, messageResponse{Message: "Unregistered successfully"})
}

// ListMine handles GET /api/registrations/me
// @Summary List the caller's registrations
// @Description The user is always the token's subject.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserRegistration
// @Failure 401 {object} messageResponse "No token provided or invalid token"
// @Failure 500 {object} messageResponse "Internal server error"
// @Router /registrations/me [get]
func (h *RegistrationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	registrations, err := h.registrationService.ListByUser(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, registrations)
}

// ListByEvent handles GET /api/registrations/{eventId}
// @Summary List the registrations of an event
// @Description Available to admin and faculty.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {array} models.EventRegistrant
// @Failure 400 {object} messageResponse "Invalid event id"
// @Failure 401 {object} messageResponse "No token provided or invalid token"
// @Failure 403 {object} messageResponse "Forbidden"
// @Failure 500 {object} messageResponse "Internal server error"
// @Router /registrations/{eventId} [get]
func (h *RegistrationHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseEventID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	roster, err := h.registrationService.ListByEvent(r.Context(), eventID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, roster)
}

// caller returns the authenticated user id from the verified claims
func (h *RegistrationHandler) caller(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := authmw.GetUserID(r.Context())
	if !ok {
		h.respondServiceError(w, r, apperrors.Authentication("Not authenticated", nil))
		return 0, false
	}
	return userID, true
}

func (h *RegistrationHandler) eventAndCaller(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	eventID, err := parseEventID(r)
	if err != nil {
		h.respondServiceError(w, r, err)
		return 0, 0, false
	}
	userID, ok := h.caller(w, r)
	if !ok {
		return 0, 0, false
	}
	return eventID, userID, true
}

func parseEventID(r *http.Request) (int, error) {
	eventID, err := strconv.Atoi(chi.URLParam(r, "eventId"))
	if err != nil || eventID <= 0 {
		return 0, apperrors.Validation("Invalid event id")
	}
	return eventID, nil
}
