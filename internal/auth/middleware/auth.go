package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/eventsphere/backend/internal/apperrors"
	"github.com/eventsphere/backend/internal/auth/service"
	"github.com/eventsphere/backend/internal/middleware"
	"go.uber.org/zap"
)

type contextKey string

const claimsKey contextKey = "claims"

// TokenVerifier verifies a bearer token and returns its claims
type TokenVerifier interface {
	Verify(tokenString string) (*service.Claims, error)
}

// Guard is one stage of the authorization pipeline.
// On success it returns the request to hand to the next stage, which may carry a
// derived context. On failure it returns a classified error and the pipeline stops.
type Guard func(r *http.Request) (*http.Request, error)

// Chain runs guards in order and only calls next when all of them pass.
// A failing guard's error is written as {"message": ...} with the mapped status.
func Chain(logger *zap.Logger, guards ...Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, guard := range guards {
				var err error
				if r, err = guard(r); err != nil {
					logger.Warn("request rejected by guard",
						zap.String("request_id", middleware.GetRequestID(r.Context())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Error(err),
					)
					writeError(w, err)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate extracts the bearer token from the Authorization header, verifies it
// and stores the claims in the request context.
func Authenticate(verifier TokenVerifier) Guard {
	return func(r *http.Request) (*http.Request, error) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			return r, apperrors.Authentication("No token provided", nil)
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			return r, apperrors.Authentication("Invalid token", err)
		}

		return r.WithContext(WithClaims(r.Context(), claims)), nil
	}
}

// RequireAuth is a middleware that only authenticates the caller
func RequireAuth(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return Chain(logger, Authenticate(verifier))
}

// bearerToken parses "Bearer <token>". The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// WithClaims returns a copy of ctx carrying claims
func WithClaims(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims retrieves the verified claims from context
func GetClaims(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*service.Claims)
	return claims, ok && claims != nil
}

// GetUserID retrieves the verified user id from context
func GetUserID(ctx context.Context) (int, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	return claims.ID, true
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.StatusCode(err))
	_ = json.NewEncoder(w).Encode(map[string]string{"message": apperrors.PublicMessage(err)})
}
