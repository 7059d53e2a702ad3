package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AryanPandeyy/opencap.co/internal/audit"
	auditrepo "github.com/AryanPandeyy/opencap.co/internal/audit/repository"
	"github.com/AryanPandeyy/opencap.co/internal/config"
	"github.com/AryanPandeyy/opencap.co/internal/db"
	"github.com/AryanPandeyy/opencap.co/internal/db/migrate"
	healthhandler "github.com/AryanPandeyy/opencap.co/internal/health/handler"
	"github.com/AryanPandeyy/opencap.co/internal/logger"
	onboardingrepo "github.com/AryanPandeyy/opencap.co/internal/onboarding/repository"
	onboardingservice "github.com/AryanPandeyy/opencap.co/internal/onboarding/service"
	policyengine "github.com/AryanPandeyy/opencap.co/internal/policy/engine"
	"github.com/AryanPandeyy/opencap.co/internal/security"
	"github.com/AryanPandeyy/opencap.co/internal/server"
	"github.com/AryanPandeyy/opencap.co/internal/server/interceptors"
	telemetryotel "github.com/AryanPandeyy/opencap.co/internal/telemetry/otel"
	"github.com/AryanPandeyy/opencap.co/internal/web"
	"github.com/AryanPandeyy/opencap.co/internal/web/site"
)

const shutdownTimeout = 10 * time.Second

func main() {
	runMigrations := flag.Bool("migrate", false, "apply database migrations before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.OTLPInsecure)
	if err != nil {
		slog.Error("telemetry", "error", err)
		os.Exit(1)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			slog.Error("telemetry shutdown", "error", err)
		}
	}()

	log := logger.New(cfg.ServiceName, cfg.SlogLevel())
	if providers.Exporting {
		log = logger.NewWithWriter(os.Stdout, cfg.ServiceName, cfg.SlogLevel(), providers.LoggerProvider)
	}
	slog.SetDefault(log)

	if err := run(ctx, cfg, providers, log, *runMigrations); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, providers *telemetryotel.Providers, log *slog.Logger, runMigrations bool) error {
	var (
		conn   *sql.DB
		pinger healthhandler.Pinger
	)
	if cfg.DatabaseURL != "" {
		if runMigrations {
			if err := migrate.Run(cfg.DatabaseURL, migrate.Up); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return err
			}
			log.Info("migrations applied")
		}
		var err error
		conn, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()
		pinger = conn
	} else {
		log.Warn("DATABASE_URL is not set; onboarding is disabled")
	}

	var policy *policyengine.OPAEvaluator
	var err error
	if cfg.PolicyFile != "" {
		policy, err = policyengine.NewOPAEvaluatorFromFile(ctx, cfg.PolicyFile)
	} else {
		policy, err = policyengine.NewOPAEvaluator(ctx, "")
	}
	if err != nil {
		return err
	}

	var tokens interceptors.AccessValidator
	if cfg.AuthEnabled() {
		pub, err := security.ParsePublicKey(cfg.JWTPublicKey)
		if err != nil {
			return err
		}
		tokens = security.NewTokenProvider(nil, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
	} else {
		log.Warn("JWT_PUBLIC_KEY is not set; protected RPCs will be rejected")
	}

	metrics, err := telemetryotel.NewOnboardingMetrics(providers.MeterProvider)
	if err != nil {
		return err
	}

	deps := server.Deps{HealthPinger: pinger, HealthPolicyChecker: policy}
	if conn != nil {
		deps.Onboarding = onboardingservice.NewOnboardingService(onboardingservice.Config{
			Store:   onboardingrepo.NewPostgresStore(conn),
			Policy:  policy,
			Audit:   audit.NewLogger(auditrepo.NewPostgresRepository(conn), interceptors.ClientIP, log),
			Metrics: metrics,
			Logger:  log,
		})
	}

	grpcServer := server.NewGRPCServer(server.Options{Tokens: tokens, Logger: log})
	server.RegisterServices(grpcServer, deps)

	health := healthhandler.NewServer(deps.HealthPinger, deps.HealthPolicyChecker)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           web.NewHandler(site.FromConfig(cfg), health.Ready, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	errorCh := make(chan error, 2)
	go func() {
		log.Info("gRPC server listening", "addr", cfg.GRPCAddr)
		errorCh <- grpcServer.Serve(lis)
	}()
	go func() {
		log.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case serveErr = <-errorCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown failed", "error", err)
	}
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}
	log.Info("servers stopped")
	return serveErr
}
