package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tier represents the user's subscription tier. It gates how often the
// simulation endpoints may be called; it is invisible to the billing engine.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// User represents a user of the Card Tracker system.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  string
	Tier          Tier
	DueDateAlerts bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:            uuid.New(),
		Email:         email,
		Name:          name,
		PasswordHash:  passwordHash,
		Tier:          TierFree,
		DueDateAlerts: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
