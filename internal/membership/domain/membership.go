package domain

import (
	"errors"
	"time"
)

// Membership links a user to a company with an access level.
type Membership struct {
	ID           string
	UserID       string
	CompanyID    string
	Access       Access
	Status       Status
	Active       bool
	IsOnboarded  bool
	Title        string
	LastAccessed time.Time
	CreatedAt    time.Time
}

type Access string

const (
	AccessAdmin       Access = "admin"
	AccessEditor      Access = "editor"
	AccessInvestor    Access = "investor"
	AccessStakeholder Access = "stakeholder"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// NewFounder returns the membership granted to the user who onboards a company:
// admin access, already accepted, active and onboarded.
func NewFounder(id, userID, companyID, title string, now time.Time) *Membership {
	return &Membership{
		ID:           id,
		UserID:       userID,
		CompanyID:    companyID,
		Access:       AccessAdmin,
		Status:       StatusAccepted,
		Active:       true,
		IsOnboarded:  true,
		Title:        title,
		LastAccessed: now,
		CreatedAt:    now,
	}
}

// Validate validates the membership for persistence.
func (m *Membership) Validate() error {
	if m.UserID == "" || m.CompanyID == "" {
		return errors.New("user and company are required")
	}
	switch m.Access {
	case AccessAdmin, AccessEditor, AccessInvestor, AccessStakeholder:
	default:
		return errors.New("access is invalid")
	}
	switch m.Status {
	case StatusPending, StatusAccepted, StatusDeclined:
	default:
		return errors.New("status is invalid")
	}
	return nil
}
