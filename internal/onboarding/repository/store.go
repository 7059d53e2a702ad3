// Package repository provides the transactional store the onboarding service writes through.
package repository

import (
	"context"
	"database/sql"

	companyrepo "github.com/AryanPandeyy/opencap.co/internal/company/repository"
	"github.com/AryanPandeyy/opencap.co/internal/db"
	membershiprepo "github.com/AryanPandeyy/opencap.co/internal/membership/repository"
	userrepo "github.com/AryanPandeyy/opencap.co/internal/user/repository"
)

// Repos groups the repositories one onboarding touches.
type Repos struct {
	Companies   companyrepo.Repository
	Users       userrepo.Repository
	Memberships membershiprepo.Repository
}

// Store runs fn against a set of repositories. Implementations that support
// transactions commit when fn returns nil and discard every write otherwise.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
}

// PostgresStore implements Store on a *sql.DB, binding the repositories to one transaction.
type PostgresStore struct {
	conn *sql.DB
}

// NewPostgresStore returns a Store backed by conn.
func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{conn: conn}
}

// WithinTx begins a transaction, runs fn with repositories bound to it and
// commits if fn succeeds.
func (s *PostgresStore) WithinTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	return db.WithTx(ctx, s.conn, func(tx *sql.Tx) error {
		return fn(ctx, ReposFor(tx))
	})
}

// ReposFor returns repositories that all run on conn.
func ReposFor(conn db.DBTX) Repos {
	return Repos{
		Companies:   companyrepo.NewPostgresRepository(conn),
		Users:       userrepo.NewPostgresRepository(conn),
		Memberships: membershiprepo.NewPostgresRepository(conn),
	}
}
