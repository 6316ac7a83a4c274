// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// XPPerLevel is the amount of experience points needed to advance one level.
	XPPerLevel = 100

	// XPFirstJournalEntry is awarded for the first journal entry of a day.
	XPFirstJournalEntry = 10
)

// User represents a user in the Kairos system.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	XP              int
	StreakReminders bool
	TermsAcceptedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		PasswordHash:    passwordHash,
		XP:              0,
		StreakReminders: true,
		TermsAcceptedAt: termsAcceptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Level derives the user's level from accumulated XP.
func (u *User) Level() int {
	return u.XP/XPPerLevel + 1
}
