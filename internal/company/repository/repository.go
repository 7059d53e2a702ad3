package repository

import (
	"context"

	"github.com/AryanPandeyy/opencap.co/internal/company/domain"
)

// Repository defines persistence for companies.
type Repository interface {
	// Create persists the company. ID and PublicID must be set.
	Create(ctx context.Context, c *domain.Company) error
}
