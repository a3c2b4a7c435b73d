package services

import (
	"context"
	"errors"

	"github.com/eventsphere/backend/internal/apperrors"
	"github.com/eventsphere/backend/internal/models"
	"go.uber.org/zap"
)

// RegistrationRepository is the interface that wraps methods for Registration table data access
type RegistrationRepository interface {
	// Method Create inserts a registration and returns its id.
	//
	// The pair (eventID, userID) is unique. A second insert for the same pair returns an
	// error wrapping models.ErrDuplicateEntry; an unknown event returns models.ErrMissingReference.
	Create(ctx context.Context, eventID, userID int) (int, error)
	// Method Delete removes the registration of userID for eventID.
	//
	// If there is no such registration, an error wrapping models.ErrNotFound will be returned.
	Delete(ctx context.Context, eventID, userID int) error
	// Method ListByEvent retrieves all registrations of an event joined with the users, newest first.
	ListByEvent(ctx context.Context, eventID int) ([]models.EventRegistrant, error)
	// Method ListByUser retrieves all registrations of a user joined with the events, newest first.
	ListByUser(ctx context.Context, userID int) ([]models.UserRegistration, error)
}

// registrationService implements the registration ledger.
// It holds no state of its own; uniqueness lives in storage.
type registrationService struct {
	repo   RegistrationRepository
	logger *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo RegistrationRepository, logger *zap.Logger) *registrationService {
	return &registrationService{
		repo:   repo,
		logger: logger,
	}
}

func validateIDs(eventID, userID int) error {
	if eventID <= 0 {
		return apperrors.Validation("Invalid event id")
	}
	if userID <= 0 {
		return apperrors.Validation("Invalid user id")
	}
	return nil
}

// Register records that userID attends eventID and returns the registration id
func (s *registrationService) Register(ctx context.Context, eventID, userID int) (int, error) {
	if err := validateIDs(eventID, userID); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, eventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateEntry):
			return 0, apperrors.Conflict("Already registered", err)
		case errors.Is(err, models.ErrMissingReference):
			return 0, apperrors.NotFound("Event not found", err)
		}
		return 0, apperrors.Internal(err)
	}

	s.logger.Info("user registered for event", zap.Int("registrationId", id), zap.Int("eventId", eventID), zap.Int("userId", userID))
	return id, nil
}

// Unregister removes the registration of userID for eventID
func (s *registrationService) Unregister(ctx context.Context, eventID, userID int) error {
	if err := validateIDs(eventID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, eventID, userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return apperrors.NotFound("Registration not found", err)
		}
		return apperrors.Internal(err)
	}

	s.logger.Info("user unregistered from event", zap.Int("eventId", eventID), zap.Int("userId", userID))
	return nil
}

// ListByEvent returns the roster of eventID
func (s *registrationService) ListByEvent(ctx context.Context, eventID int) ([]models.EventRegistrant, error) {
	if eventID <= 0 {
		return nil, apperrors.Validation("Invalid event id")
	}

	roster, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if roster == nil {
		roster = []models.EventRegistrant{}
	}
	return roster, nil
}

// ListByUser returns the registrations of userID
func (s *registrationService) ListByUser(ctx context.Context, userID int) ([]models.UserRegistration, error) {
	if userID <= 0 {
		return nil, apperrors.Validation("Invalid user id")
	}

	registrations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if registrations == nil {
		registrations = []models.UserRegistration{}
	}
	return registrations, nil
}
