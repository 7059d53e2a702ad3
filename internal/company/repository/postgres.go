package repository

import (
	"context"
	"fmt"

	"github.com/AryanPandeyy/opencap.co/internal/company/domain"
	"github.com/AryanPandeyy/opencap.co/internal/db"
)

const createCompany = `INSERT INTO companies (
    id, public_id, name, incorporation_type, incorporation_date,
    incorporation_country, incorporation_state, street_address, city, state,
    zipcode, country, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns a company repository that uses the given db (pool or transaction) for persistence.
func NewPostgresRepository(conn db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

// Create inserts the company row. A duplicate public_id surfaces as the driver's unique violation.
func (r *PostgresRepository) Create(ctx context.Context, c *domain.Company) error {
	_, err := r.db.ExecContext(ctx, createCompany,
		c.ID, c.PublicID, c.Name, string(c.IncorporationType), c.IncorporationDate,
		c.IncorporationCountry, c.IncorporationState, c.StreetAddress, c.City, c.State,
		c.Zipcode, c.Country, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}
