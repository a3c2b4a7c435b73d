package middleware

import (
	"net/http"

	"github.com/eventsphere/backend/internal/apperrors"
	"github.com/eventsphere/backend/internal/models"
	"go.uber.org/zap"
)

// AuthorizeRoles passes only when the authenticated caller's role is in allowed.
// It must run after Authenticate; without claims in the context it fails with an
// authentication error instead of passing.
func AuthorizeRoles(allowed ...models.Role) Guard {
	set := models.NewRoleSet(allowed...)
	return func(r *http.Request) (*http.Request, error) {
		claims, ok := GetClaims(r.Context())
		if !ok {
			return r, apperrors.Authentication("Not authenticated", nil)
		}
		if !set.Contains(claims.Role) {
			return r, apperrors.Authorization("Forbidden")
		}
		return r, nil
	}
}

// RequireRoles authenticates the caller and checks the role against allowed
func RequireRoles(verifier TokenVerifier, logger *zap.Logger, allowed ...models.Role) func(http.Handler) http.Handler {
	return Chain(logger, Authenticate(verifier), AuthorizeRoles(allowed...))
}
