package repository

import (
	"context"

	"github.com/AryanPandeyy/opencap.co/internal/membership/domain"
)

// Repository defines persistence for memberships.
type Repository interface {
	// CreateMembership persists the membership. The membership must have ID set.
	CreateMembership(ctx context.Context, m *domain.Membership) error
}
