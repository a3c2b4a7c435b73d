package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/eventsphere/backend/internal/apperrors"
	"github.com/eventsphere/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user. On success user.ID is set.
	//
	// If the email is already taken, an error wrapping models.ErrDuplicateEntry will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by exact email.
	//
	// "email" parameter is compared case-sensitively.
	//
	// If user with such email does not exist, an error wrapping models.ErrNotFound will be returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer signs identity tokens for authenticated users
type TokenIssuer interface {
	// Method Issue signs a token carrying the user's id, name, email and role.
	Issue(user *models.User) (string, error)
}

// authService implements the credential store: account creation and credential checks
type authService struct {
	userRepo    UserRepository
	tokenIssuer TokenIssuer
	logger      *zap.Logger
	bcryptCost  int
	dummyHash   func() []byte
}

// NewAuthService creates a new auth service.
// bcryptCost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewAuthService(userRepo UserRepository, tokenIssuer TokenIssuer, logger *zap.Logger, bcryptCost int) *authService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
		bcryptCost:  bcryptCost,
		dummyHash: sync.OnceValue(func() []byte {
			hash, err := bcrypt.GenerateFromPassword([]byte("eventsphere-dummy-password"), bcryptCost)
			if err != nil {
				return nil
			}
			return hash
		}),
	}
}

// Register creates a new user account.
// Role is optional and defaults to student.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.Validation("Please fill all fields")
	}

	role := models.RoleStudent
	if req.Role != "" {
		parsed, err := models.ParseRole(req.Role)
		if err != nil {
			return nil, apperrors.Validation("Invalid role")
		}
		role = parsed
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperrors.Validation("Password must not exceed 72 bytes")
	}
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicateEntry) {
			return nil, apperrors.Conflict("Email already exists", err)
		}
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("user registered", zap.Int("userId", user.ID), zap.String("role", role.String()))
	return user, nil
}

// VerifyCredentials returns the user owning email if password matches its stored hash.
// An unknown email and a wrong password produce the same error.
func (s *authService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, apperrors.Internal(err)
		}
		// Spend the same bcrypt work as a real comparison
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
		s.logger.Warn("login failed", zap.String("reason", "user not found"))
		return nil, apperrors.Authentication("Invalid credentials", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed", zap.String("reason", "password mismatch"), zap.Int("userId", user.ID))
		return nil, apperrors.Authentication("Invalid credentials", err)
	}

	return user, nil
}

// Login verifies the credentials and issues an identity token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.Validation("Please enter email and password")
	}

	user, err := s.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenIssuer.Issue(user)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err), zap.Int("userId", user.ID))
		return nil, apperrors.Internal(err)
	}

	return &models.LoginResponse{
		Token: token,
		User: models.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
