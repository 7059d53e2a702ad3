package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AryanPandeyy/opencap.co/internal/db"
	"github.com/AryanPandeyy/opencap.co/internal/membership/domain"
)

const createMembership = `INSERT INTO memberships (
    id, user_id, company_id, access, status, active, is_onboarded, title, last_accessed, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns a membership repository that uses the given db (pool or transaction) for persistence.
func NewPostgresRepository(conn db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

// CreateMembership inserts the membership row. Foreign keys reject memberships for unknown users or companies.
func (r *PostgresRepository) CreateMembership(ctx context.Context, m *domain.Membership) error {
	title := sql.NullString{String: m.Title, Valid: m.Title != ""}
	_, err := r.db.ExecContext(ctx, createMembership,
		m.ID, m.UserID, m.CompanyID, string(m.Access), string(m.Status),
		m.Active, m.IsOnboarded, title, m.LastAccessed, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create membership: %w", err)
	}
	return nil
}
