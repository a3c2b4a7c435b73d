package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eventsphere/backend/internal/models"
	"go.uber.org/zap"
)

type registrationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *sql.DB, logger *zap.Logger) *registrationRepository {
	return &registrationRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a registration row and returns its id.
//
// Uniqueness of (event_id, user_id) is enforced by the table's unique key in the same
// statement, so concurrent inserts for one pair yield one row and models.ErrDuplicateEntry
// for every other caller. An event id unknown to the catalog yields models.ErrMissingReference.
func (r *registrationRepository) Create(ctx context.Context, eventID, userID int) (int, error) {
	query := `INSERT INTO registrations (event_id, user_id) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		switch {
		case isDuplicateEntry(err):
			return 0, fmt.Errorf("failed to create registration: %w", models.ErrDuplicateEntry)
		case isMissingReference(err):
			return 0, fmt.Errorf("failed to create registration: %w", models.ErrMissingReference)
		}
		r.logger.Error("failed to create registration", zap.Error(err), zap.Int("eventId", eventID), zap.Int("userId", userID))
		return 0, fmt.Errorf("failed to create registration: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return int(id), nil
}

// Delete removes the registration of userID for eventID.
// Returns models.ErrNotFound when no row matched.
func (r *registrationRepository) Delete(ctx context.Context, eventID, userID int) error {
	query := `DELETE FROM registrations WHERE event_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		r.logger.Error("failed to delete registration", zap.Error(err), zap.Int("eventId", eventID), zap.Int("userId", userID))
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("registration %w", models.ErrNotFound)
	}

	return nil
}

// ListByEvent retrieves the roster of an event, newest registration first
func (r *registrationRepository) ListByEvent(ctx context.Context, eventID int) ([]models.EventRegistrant, error) {
	query := `
		SELECT r.id, r.registered_at, u.id, u.name, u.email
		FROM registrations r
		INNER JOIN users u ON u.id = r.user_id
		WHERE r.event_id = ?
		ORDER BY r.registered_at DESC, r.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		r.logger.Error("failed to query event registrations", zap.Error(err), zap.Int("eventId", eventID))
		return nil, fmt.Errorf("failed to query event registrations: %w", err)
	}
	defer rows.Close()

	registrants := make([]models.EventRegistrant, 0)
	for rows.Next() {
		var item models.EventRegistrant
		if err := rows.Scan(&item.ID, &item.RegisteredAt, &item.UserID, &item.Name, &item.Email); err != nil {
			r.logger.Error("failed to scan event registration", zap.Error(err))
			return nil, fmt.Errorf("failed to scan event registration: %w", err)
		}
		registrants = append(registrants, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return registrants, nil
}

// ListByUser retrieves the registrations of a user joined with their events, newest first
func (r *registrationRepository) ListByUser(ctx context.Context, userID int) ([]models.UserRegistration, error) {
	query := `
		SELECT r.id, r.registered_at, e.id, e.title, e.date, e.location
		FROM registrations r
		INNER JOIN events e ON e.id = r.event_id
		WHERE r.user_id = ?
		ORDER BY r.registered_at DESC, r.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to query user registrations", zap.Error(err), zap.Int("userId", userID))
		return nil, fmt.Errorf("failed to query user registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]models.UserRegistration, 0)
	for rows.Next() {
		var item models.UserRegistration
		var location sql.NullString
		if err := rows.Scan(&item.ID, &item.RegisteredAt, &item.EventID, &item.Title, &item.Date, &location); err != nil {
			r.logger.Error("failed to scan user registration", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user registration: %w", err)
		}
		item.Location = location.String
		registrations = append(registrations, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return registrations, nil
}
