package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/eventsphere/backend/internal/apperrors"
	"github.com/eventsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user      *models.User
	err       error
	created   *models.User
	lookedUp  string
	createErr error
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.lookedUp = email
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

// mockTokenIssuer is a mock implementation of TokenIssuer
type mockTokenIssuer struct {
	token string
	err   error
	user  *models.User
}

func (m *mockTokenIssuer) Issue(user *models.User) (string, error) {
	m.user = user
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestNewAuthService(t *testing.T) {
	logger := zap.NewNop()
	userRepo := &mockUserRepository{}
	issuer := &mockTokenIssuer{}

	svc := NewAuthService(userRepo, issuer, logger, 4)
	assert.Equal(t, userRepo, svc.userRepo)
	assert.Equal(t, issuer, svc.tokenIssuer)
	assert.Equal(t, 4, svc.bcryptCost)

	assert.Equal(t, bcrypt.DefaultCost, NewAuthService(userRepo, issuer, logger, 0).bcryptCost)
	assert.Equal(t, bcrypt.DefaultCost, NewAuthService(userRepo, issuer, logger, 40).bcryptCost)
}

func TestAuthService_Register(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name         string
		req          models.RegisterRequest
		userRepo     *mockUserRepository
		expectedRole models.Role
		expectedKind error
		expectedMsg  string
	}{
		{
			name:         "success with default role",
			req:          models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret"},
			userRepo:     &mockUserRepository{},
			expectedRole: models.RoleStudent,
		},
		{
			name:         "success with explicit role",
			req:          models.RegisterRequest{Name: "Fay", Email: "fay@example.com", Password: "secret", Role: "faculty"},
			userRepo:     &mockUserRepository{},
			expectedRole: models.RoleFaculty,
		},
		{
			name:         "missing name",
			req:          models.RegisterRequest{Email: "alice@example.com", Password: "secret"},
			userRepo:     &mockUserRepository{},
			expectedKind: apperrors.ErrValidation,
			expectedMsg:  "Please fill all fields",
		},
		{
			name:         "whitespace only email",
			req:          models.RegisterRequest{Name: "Alice", Email: "   ", Password: "secret"},
			userRepo:     &mockUserRepository{},
			expectedKind: apperrors.ErrValidation,
			expectedMsg:  "Please fill all fields",
		},
		{
			name:         "missing password",
			req:          models.RegisterRequest{Name: "Alice", Email: "alice@example.com"},
			userRepo:     &mockUserRepository{},
			expectedKind: apperrors.ErrValidation,
			expectedMsg:  "Please fill all fields",
		},
		{
			name:         "whitespace only password is accepted",
			req:          models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "   "},
			userRepo:     &mockUserRepository{},
			expectedRole: models.RoleStudent,
		},
		{
			name:         "unknown role",
			req:          models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret", Role: "superuser"},
			userRepo:     &mockUserRepository{},
			expectedKind: apperrors.ErrValidation,
			expectedMsg:  "Invalid role",
		},
		{
			name:         "password too long",
			req:          models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: strings.Repeat("p", 73)},
			userRepo:     &mockUserRepository{},
			expectedKind: apperrors.ErrValidation,
			expectedMsg:  "Password must not exceed 72 bytes",
		},
		{
			name:         "duplicate email",
			req:          models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret"},
			userRepo:     &mockUserRepository{createErr: fmt.Errorf("failed to create user: %w", models.ErrDuplicateEntry)},
			expectedKind: apperrors.ErrConflict,
			expectedMsg:  "Email already exists",
		},
		{
			name:         "repository failure",
			req:          models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret"},
			userRepo:     &mockUserRepository{createErr: errors.New("connection reset")},
			expectedKind: apperrors.ErrInternal,
			expectedMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.userRepo, &mockTokenIssuer{}, logger, bcrypt.MinCost)

			user, err := svc.Register(context.Background(), &tt.req)

			if tt.expectedKind != nil {
				require.Error(t, err)
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tt.expectedKind)
				assert.Equal(t, tt.expectedMsg, apperrors.PublicMessage(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, user.ID)
			assert.Equal(t, tt.expectedRole, user.Role)
			assert.Equal(t, tt.req.Email, tt.userRepo.created.Email)
			assert.NotEqual(t, tt.req.Password, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.req.Password)))
		})
	}
}

func TestAuthService_Register_StoresEmailAsGiven(t *testing.T) {
	repo := &mockUserRepository{}
	svc := NewAuthService(repo, &mockTokenIssuer{}, zap.NewNop(), bcrypt.MinCost)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "Alice", Email: "Alice@Example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "Alice@Example.com", repo.created.Email)
}

func TestAuthService_VerifyCredentials(t *testing.T) {
	stored := &models.User{ID: 3, Name: "Alice", Email: "alice@example.com", PasswordHash: hashPassword(t, "secret"), Role: models.RoleStudent}

	tests := []struct {
		name           string
		password       string
		userRepo       *mockUserRepository
		expectedKind   error
		expectedReason string
	}{
		{
			name:     "success",
			password: "secret",
			userRepo: &mockUserRepository{user: stored},
		},
		{
			name:           "wrong password",
			password:       "guess",
			userRepo:       &mockUserRepository{user: stored},
			expectedKind:   apperrors.ErrAuthentication,
			expectedReason: "password mismatch",
		},
		{
			name:           "unknown email",
			password:       "secret",
			userRepo:       &mockUserRepository{err: fmt.Errorf("user %w", models.ErrNotFound)},
			expectedKind:   apperrors.ErrAuthentication,
			expectedReason: "user not found",
		},
		{
			name:         "storage failure",
			password:     "secret",
			userRepo:     &mockUserRepository{err: errors.New("timeout")},
			expectedKind: apperrors.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			svc := NewAuthService(tt.userRepo, &mockTokenIssuer{}, zap.New(core), bcrypt.MinCost)

			user, err := svc.VerifyCredentials(context.Background(), "alice@example.com", tt.password)

			if tt.expectedKind == nil {
				require.NoError(t, err)
				assert.Equal(t, stored, user)
				assert.Zero(t, logs.Len())
				return
			}

			require.Error(t, err)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.expectedKind)
			if tt.expectedReason != "" {
				assert.Equal(t, "Invalid credentials", apperrors.PublicMessage(err))
				require.Equal(t, 1, logs.Len())
				assert.Equal(t, tt.expectedReason, logs.All()[0].ContextMap()["reason"])
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	stored := &models.User{ID: 3, Name: "Alice", Email: "alice@example.com", PasswordHash: hashPassword(t, "secret"), Role: models.RoleFaculty}

	t.Run("success", func(t *testing.T) {
		issuer := &mockTokenIssuer{token: "signed.token.value"}
		svc := NewAuthService(&mockUserRepository{user: stored}, issuer, zap.NewNop(), bcrypt.MinCost)

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "alice@example.com", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "signed.token.value", resp.Token)
		assert.Equal(t, models.UserResponse{ID: 3, Name: "Alice", Email: "alice@example.com", Role: models.RoleFaculty}, resp.User)
		assert.Equal(t, stored, issuer.user)
	})

	t.Run("missing fields", func(t *testing.T) {
		for _, req := range []models.LoginRequest{{}, {Email: "alice@example.com"}, {Password: "secret"}, {Email: " ", Password: "secret"}} {
			svc := NewAuthService(&mockUserRepository{user: stored}, &mockTokenIssuer{}, zap.NewNop(), bcrypt.MinCost)

			_, err := svc.Login(context.Background(), &req)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, "Please enter email and password", apperrors.PublicMessage(err))
		}
	})

	t.Run("invalid credentials do not issue a token", func(t *testing.T) {
		issuer := &mockTokenIssuer{token: "never"}
		svc := NewAuthService(&mockUserRepository{user: stored}, issuer, zap.NewNop(), bcrypt.MinCost)

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "alice@example.com", Password: "wrong"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrAuthentication)
		assert.Nil(t, issuer.user)
	})

	t.Run("issuer failure", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{user: stored}, &mockTokenIssuer{err: errors.New("sign failure")}, zap.NewNop(), bcrypt.MinCost)

		resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "alice@example.com", Password: "secret"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInternal)
		assert.Equal(t, "Internal server error", apperrors.PublicMessage(err))
	})
}
