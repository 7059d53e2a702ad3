package server

import (
	"log/slog"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	onboardingv1 "github.com/AryanPandeyy/opencap.co/api/onboarding/v1"
	healthhandler "github.com/AryanPandeyy/opencap.co/internal/health/handler"
	onboardinghandler "github.com/AryanPandeyy/opencap.co/internal/onboarding/handler"
	"github.com/AryanPandeyy/opencap.co/internal/server/interceptors"
)

// Deps holds optional service dependencies for gRPC handlers.
type Deps struct {
	// Onboarding is the onboarding service. If nil, Onboard returns Unimplemented.
	Onboarding onboardinghandler.Onboarder
	// HealthPinger is used by the health service for readiness (e.g. *sql.DB). If nil, Check skips the DB ping.
	HealthPinger healthhandler.Pinger
	// HealthPolicyChecker is used by the health service for readiness (e.g. OPA evaluator). If nil, Check skips the policy check.
	HealthPolicyChecker healthhandler.PolicyChecker
}

// PublicMethods are the RPCs callable without a Bearer token.
var PublicMethods = map[string]bool{
	healthpb.Health_Check_FullMethodName: true,
	healthpb.Health_Watch_FullMethodName: true,
}

// RegisterServices registers all gRPC services with the given server.
//
// Service → handler mapping:
//   - onboarding.v1.OnboardingService → internal/onboarding/handler
//   - grpc.health.v1.Health           → internal/health/handler
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	onboardingv1.RegisterOnboardingServiceServer(s, onboardinghandler.NewServer(deps.Onboarding))
	healthpb.RegisterHealthServer(s, healthhandler.NewServer(deps.HealthPinger, deps.HealthPolicyChecker))
}

// Options configures NewGRPCServer.
type Options struct {
	// Tokens validates access tokens. If nil, every protected RPC is rejected.
	Tokens interceptors.AccessValidator
	Logger *slog.Logger
}

// NewGRPCServer returns a gRPC server instrumented with otelgrpc and the logging
// and auth interceptors, in that order. Health checks are neither logged nor authenticated.
func NewGRPCServer(opts Options, extra ...grpc.ServerOption) *grpc.Server {
	serverOpts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggingUnary(opts.Logger, PublicMethods),
			interceptors.AuthUnary(opts.Tokens, PublicMethods),
		),
	}
	return grpc.NewServer(append(serverOpts, extra...)...)
}
