package repository

import (
	"context"
	"fmt"

	"github.com/AryanPandeyy/opencap.co/internal/audit/domain"
	"github.com/AryanPandeyy/opencap.co/internal/db"
)

const createAuditLog = `INSERT INTO audit_logs (
    id, company_id, user_id, action, resource, resource_id, ip, metadata, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns an audit log repository that uses the given db for persistence.
func NewPostgresRepository(conn db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

// Create appends one audit log row.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.AuditLog) error {
	_, err := r.db.ExecContext(ctx, createAuditLog,
		a.ID, a.CompanyID, a.UserID, a.Action, a.Resource, a.ResourceID, a.IP, a.Metadata, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}
