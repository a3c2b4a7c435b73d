package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/eventsphere/backend/internal/apperrors"
	"github.com/eventsphere/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for account and credential business logic.
type AuthService interface {
	// Method Register validates the request and creates a new account.
	//
	// "req" parameter contains name, email, password and an optional role (student by default).
	//
	// If fields are missing, the role is unknown, the email is taken or some other error occurs, the error will be returned together with "nil" value.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	// Method Login verifies email and password and returns a signed token together with the public user view.
	//
	// "req" parameter contains email and password.
	//
	// Unknown email and wrong password return the same authentication error.
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

// AuthHandler handles account and login HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes.
// The router is expected to be scoped to /api.
func (h *AuthHandler) RegisterRoutes(r chi.Router, middlewares ...func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Use(middlewares...)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
}

// Register handles POST /api/auth/register
// @Summary Register a new user
// @Description Create an account. Role is optional and defaults to student.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account details"
// @Success 201 {object} messageResponse "User registered successfully"
// @Failure 400 {object} messageResponse "Missing fields, invalid role or email already exists"
// @Failure 500 {object} messageResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.authService.Register(r.Context(), &req); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify email and password and return a signed bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} messageResponse "Missing fields or invalid credentials"
// @Failure 500 {object} messageResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		// Bad credentials are a client error on this endpoint, not a missing token
		if errors.Is(err, apperrors.ErrAuthentication) {
			h.respondErrorWithStatus(w, r, http.StatusBadRequest, err)
			return
		}
		h.respondServiceError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
