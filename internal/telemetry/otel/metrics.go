package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/AryanPandeyy/opencap.co/onboarding"

// OnboardingMetrics records onboarding outcomes and latency.
type OnboardingMetrics struct {
	attempts otelmetric.Int64Counter
	duration otelmetric.Float64Histogram
}

// NewOnboardingMetrics creates the onboarding instruments on mp.
func NewOnboardingMetrics(mp otelmetric.MeterProvider) (*OnboardingMetrics, error) {
	meter := mp.Meter(meterName)
	attempts, err := meter.Int64Counter("opencap.onboarding.attempts",
		otelmetric.WithDescription("Onboarding attempts by outcome."),
		otelmetric.WithUnit("{attempt}"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("opencap.onboarding.duration",
		otelmetric.WithDescription("Time spent onboarding a company."),
		otelmetric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &OnboardingMetrics{attempts: attempts, duration: duration}, nil
}

// RecordOnboarding counts one attempt and records its duration. Nil-safe.
func (m *OnboardingMetrics) RecordOnboarding(ctx context.Context, success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := attribute.String("outcome", "failure")
	if success {
		outcome = attribute.String("outcome", "success")
	}
	m.attempts.Add(ctx, 1, otelmetric.WithAttributes(outcome))
	m.duration.Record(ctx, elapsed.Seconds(), otelmetric.WithAttributes(outcome))
}
