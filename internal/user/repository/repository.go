package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AryanPandeyy/opencap.co/internal/user/domain"
)

// ErrNotFound is returned by UpdateProfile when no user row matches.
var ErrNotFound = errors.New("user not found")

// Repository defines persistence for users.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	// UpdateProfile sets name and email on an existing user. Returns ErrNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id, name, email string, updatedAt time.Time) error
}
