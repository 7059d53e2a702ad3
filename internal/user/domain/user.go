package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// User is the core user entity. Rows are created by the authentication
// collaborator; this service only fills in the profile during onboarding.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateEmail reports whether email is a single bare address (no display name).
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("email is invalid")
	}
	return nil
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.ID == "" {
		return errors.New("id is required")
	}
	return ValidateEmail(u.Email)
}
