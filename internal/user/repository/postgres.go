package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AryanPandeyy/opencap.co/internal/db"
	"github.com/AryanPandeyy/opencap.co/internal/user/domain"
)

const (
	getUser = `SELECT id, email, name, created_at, updated_at FROM users WHERE id = $1`

	createUser = `INSERT INTO users (id, email, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`

	updateUserProfile = `UPDATE users SET name = $2, email = $3, updated_at = $4 WHERE id = $1`
)

type PostgresRepository struct {
	db db.DBTX
}

// NewPostgresRepository returns a user repository that uses the given db (pool or transaction) for persistence.
func NewPostgresRepository(conn db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: conn}
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var (
		u    domain.User
		name sql.NullString
	)
	err := r.db.QueryRowContext(ctx, getUser, id).Scan(&u.ID, &u.Email, &name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Name = name.String
	return &u, nil
}

// Create persists the user to the database. The user must have ID set; it is not assigned by this method.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	name := sql.NullString{String: u.Name, Valid: u.Name != ""}
	if _, err := r.db.ExecContext(ctx, createUser, u.ID, u.Email, name, u.CreatedAt, u.UpdatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// UpdateProfile overwrites name and email for the user with the given id.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id, name, email string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, updateUserProfile, id, name, email, updatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
