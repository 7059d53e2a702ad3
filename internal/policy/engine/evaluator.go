package engine

import (
	"context"
	"time"
)

// OnboardingInput is the document the onboarding policy is evaluated against.
type OnboardingInput struct {
	ActorUserID          string
	ActorSessionID       string
	CompanyName          string
	IncorporationType    string
	IncorporationDate    time.Time
	IncorporationCountry string
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allow bool
	// Reasons lists the deny reasons the policy reported, if any.
	Reasons []string
}

// Evaluator decides whether an actor may onboard a company.
type Evaluator interface {
	EvaluateOnboarding(ctx context.Context, in OnboardingInput) (Decision, error)
}
