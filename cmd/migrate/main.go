// migrate applies the embedded SQL migrations: go run ./cmd/migrate -direction up.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/AryanPandeyy/opencap.co/internal/config"
	"github.com/AryanPandeyy/opencap.co/internal/db/migrate"
	"github.com/AryanPandeyy/opencap.co/internal/logger"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New("migrate", slog.LevelInfo).Error("config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.ServiceName+"-migrate", cfg.SlogLevel())

	d, err := migrate.ParseDirection(*direction)
	if err != nil {
		log.Error("invalid flag", "error", err)
		os.Exit(2)
	}
	if err := migrate.Run(cfg.DatabaseURL, d); err != nil {
		log.Error("migrate failed", "direction", d, "error", err)
		os.Exit(1)
	}
	log.Info("migrations complete", "direction", d)
}
