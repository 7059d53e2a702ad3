// seed inserts a development user and prints an access token for it, standing
// in for the external auth service during local testing.
// Idempotent: an existing dev user is reused.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/AryanPandeyy/opencap.co/internal/config"
	"github.com/AryanPandeyy/opencap.co/internal/db"
	"github.com/AryanPandeyy/opencap.co/internal/logger"
	"github.com/AryanPandeyy/opencap.co/internal/security"
	userdomain "github.com/AryanPandeyy/opencap.co/internal/user/domain"
	userrepo "github.com/AryanPandeyy/opencap.co/internal/user/repository"
)

const (
	devUserID    = "dev-user-001"
	devUserEmail = "dev@example.com"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("seed", slog.LevelInfo).Error("config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.ServiceName+"-seed", cfg.SlogLevel())
	if err := run(context.Background(), cfg); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if cfg.JWTPrivateKey == "" || cfg.JWTPublicKey == "" {
		return fmt.Errorf("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set to mint a dev token")
	}
	signer, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		return fmt.Errorf("private key: %w", err)
	}
	pub, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		return fmt.Errorf("public key: %w", err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	users := userrepo.NewPostgresRepository(conn)
	u, err := users.GetByID(ctx, devUserID)
	if err != nil {
		return err
	}
	if u == nil {
		now := time.Now().UTC()
		u = &userdomain.User{ID: devUserID, Email: devUserEmail, CreatedAt: now, UpdatedAt: now}
		if err := u.Validate(); err != nil {
			return err
		}
		if err := users.Create(ctx, u); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "created user %s (%s)\n", u.ID, u.Email)
	} else {
		fmt.Fprintf(os.Stderr, "user %s already exists\n", u.ID)
	}

	tokens := security.NewTokenProvider(signer, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
	token, expiresAt, err := tokens.IssueAccess(uuid.New().String(), u.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "access token expires at %s\n", expiresAt.Format(time.RFC3339))
	fmt.Println(token)
	return nil
}
