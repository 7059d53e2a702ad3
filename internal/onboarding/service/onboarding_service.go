package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AryanPandeyy/opencap.co/internal/audit"
	auditdomain "github.com/AryanPandeyy/opencap.co/internal/audit/domain"
	membershipdomain "github.com/AryanPandeyy/opencap.co/internal/membership/domain"
	"github.com/AryanPandeyy/opencap.co/internal/onboarding/domain"
	"github.com/AryanPandeyy/opencap.co/internal/onboarding/repository"
	policyengine "github.com/AryanPandeyy/opencap.co/internal/policy/engine"
	"github.com/AryanPandeyy/opencap.co/internal/publicid"
)

// Sentinel errors; Onboard logs them and returns the generic failure envelope.
var (
	ErrNoActor      = errors.New("onboarding requires an authenticated user")
	ErrPolicyDenied = errors.New("onboarding denied by policy")
)

// Recorder observes onboarding outcomes. *otel.OnboardingMetrics implements it.
type Recorder interface {
	RecordOnboarding(ctx context.Context, success bool, elapsed time.Duration)
}

// Config holds the onboarding service dependencies. Store is required; the rest are optional.
type Config struct {
	Store repository.Store
	// IDs generates company public identifiers. Defaults to publicid.Default.
	IDs publicid.Generator
	// Policy gates onboarding. Nil allows every request.
	Policy policyengine.Evaluator
	// Audit records successful onboardings after commit. Nil disables auditing.
	Audit audit.AuditLogger
	// Metrics records outcome and latency. Nil disables recording.
	Metrics Recorder
	Logger  *slog.Logger
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// OnboardingService creates a company for the authenticated user and makes them its admin.
type OnboardingService struct {
	store   repository.Store
	ids     publicid.Generator
	policy  policyengine.Evaluator
	audit   audit.AuditLogger
	metrics Recorder
	log     *slog.Logger
	now     func() time.Time
}

// NewOnboardingService returns an OnboardingService with cfg's dependencies and defaults for the optional ones.
func NewOnboardingService(cfg Config) *OnboardingService {
	s := &OnboardingService{
		store:   cfg.Store,
		ids:     cfg.IDs,
		policy:  cfg.Policy,
		audit:   cfg.Audit,
		metrics: cfg.Metrics,
		log:     cfg.Logger,
		now:     cfg.Now,
	}
	if s.ids == nil {
		s.ids = publicid.Default
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Onboard creates the company, fills in the user's profile and grants the user
// an admin membership. The three writes share one transaction. Onboard never
// returns an error: every failure is logged and reported as the generic failure result.
func (s *OnboardingService) Onboard(ctx context.Context, userID, sessionID string, in domain.Input) domain.Result {
	start := time.Now()
	publicID, companyID, err := s.onboard(ctx, userID, sessionID, in)
	if s.metrics != nil {
		s.metrics.RecordOnboarding(ctx, err == nil, time.Since(start))
	}
	if err != nil {
		s.log.ErrorContext(ctx, "onboarding failed", "user_id", userID, "error", err)
		return domain.Failed()
	}
	s.log.InfoContext(ctx, "company onboarded", "user_id", userID, "company_id", companyID, "public_id", publicID)
	if s.audit != nil {
		s.audit.LogEvent(ctx, audit.Event{
			CompanyID:  companyID,
			UserID:     userID,
			Action:     auditdomain.ActionCompanyOnboarded,
			Resource:   auditdomain.ResourceCompany,
			ResourceID: publicID,
		})
	}
	return domain.Succeeded(publicID)
}

func (s *OnboardingService) onboard(ctx context.Context, userID, sessionID string, in domain.Input) (publicID, companyID string, err error) {
	if strings.TrimSpace(userID) == "" {
		return "", "", ErrNoActor
	}
	if s.store == nil {
		return "", "", errors.New("onboarding store is not configured")
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return "", "", err
	}
	now := s.now().UTC()

	publicID, err = s.ids.NewID()
	if err != nil {
		return "", "", fmt.Errorf("generate public id: %w", err)
	}
	if !publicid.Valid(publicID) {
		return "", "", fmt.Errorf("generate public id: malformed id %q", publicID)
	}
	companyID = uuid.New().String()
	company, err := in.NewCompany(companyID, publicID, now)
	if err != nil {
		return "", "", err
	}

	if s.policy != nil {
		decision, err := s.policy.EvaluateOnboarding(ctx, policyengine.OnboardingInput{
			ActorUserID:          userID,
			ActorSessionID:       sessionID,
			CompanyName:          company.Name,
			IncorporationType:    string(company.IncorporationType),
			IncorporationDate:    company.IncorporationDate,
			IncorporationCountry: company.IncorporationCountry,
		})
		if err != nil {
			return "", "", fmt.Errorf("evaluate policy: %w", err)
		}
		if !decision.Allow {
			return "", "", fmt.Errorf("%w: %s", ErrPolicyDenied, strings.Join(decision.Reasons, "; "))
		}
	}

	member := membershipdomain.NewFounder(uuid.New().String(), userID, companyID, in.User.Title, now)
	if err := member.Validate(); err != nil {
		return "", "", err
	}

	err = s.store.WithinTx(ctx, func(ctx context.Context, r repository.Repos) error {
		if err := r.Companies.Create(ctx, company); err != nil {
			return err
		}
		if err := r.Users.UpdateProfile(ctx, userID, in.User.Name, in.User.Email, now); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return r.Memberships.CreateMembership(ctx, member)
	})
	if err != nil {
		return "", "", err
	}
	return publicID, companyID, nil
}
