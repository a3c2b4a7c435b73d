package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/eventsphere/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenExpiry is the lifetime of an identity token
const DefaultTokenExpiry = 24 * time.Hour

// ErrInvalidToken is returned by Verify for every token that must be rejected.
// The wrapped cause describes why.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed identity snapshot carried by a token.
// It is taken at issuance and is not re-read from storage on verification,
// so role or name changes only apply after the user logs in again.
type Claims struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenGenerator issues and verifies HS256 identity tokens
type TokenGenerator struct {
	secret    []byte
	expiry    time.Duration
	clockSkew time.Duration
	now       func() time.Time
}

// Option configures a TokenGenerator
type Option func(*TokenGenerator)

// WithClockSkew sets the leeway tolerated when checking exp and iat
func WithClockSkew(skew time.Duration) Option {
	return func(tg *TokenGenerator) { tg.clockSkew = skew }
}

// WithClock replaces the time source, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(tg *TokenGenerator) { tg.now = now }
}

// NewTokenGenerator creates a new token generator.
// A non-positive expiry falls back to DefaultTokenExpiry.
func NewTokenGenerator(secret string, expiry time.Duration, opts ...Option) *TokenGenerator {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	tg := &TokenGenerator{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(tg)
	}
	return tg
}

// Issue signs a token for user with iat = now and exp = now + expiry
func (tg *TokenGenerator) Issue(user *models.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("cannot issue token for nil user")
	}
	if !user.Role.Valid() {
		return "", fmt.Errorf("cannot issue token for user %d: invalid role", user.ID)
	}

	issuedAt := tg.now().Truncate(time.Second)
	claims := Claims{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tg.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tg.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns its claims.
// Every failure wraps ErrInvalidToken.
func (tg *TokenGenerator) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			// Validate the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return tg.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(tg.clockSkew),
		jwt.WithTimeFunc(tg.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: token is invalid", ErrInvalidToken)
	}

	if claims.ID <= 0 {
		return nil, fmt.Errorf("%w: id not found in token", ErrInvalidToken)
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: role not found in token", ErrInvalidToken)
	}

	return claims, nil
}
