package models

import "time"

// EventRegistrant is a registration joined with the identity of the registered user.
// It is the row type of an event roster.
type EventRegistrant struct {
	ID           int       `json:"id"`
	RegisteredAt time.Time `json:"registered_at"`
	UserID       int       `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
}

// UserRegistration is a registration joined with the event it points at
type UserRegistration struct {
	ID           int       `json:"id"`
	RegisteredAt time.Time `json:"registered_at"`
	EventID      int       `json:"event_id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
}

// RegisterResponse is returned after a successful event registration
type RegisterResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}
