package domain

import "time"

// Actions recorded by this service.
const (
	ActionCompanyOnboarded = "company.onboarded"
)

// Resources audit events refer to.
const (
	ResourceCompany = "company"
)

// AuditLog represents an audit event scoped to a company.
type AuditLog struct {
	ID         string
	CompanyID  string
	UserID     string
	Action     string
	Resource   string
	ResourceID string
	IP         string
	Metadata   string
	CreatedAt  time.Time
}
