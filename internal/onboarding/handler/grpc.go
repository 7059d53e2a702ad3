package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	onboardingv1 "github.com/AryanPandeyy/opencap.co/api/onboarding/v1"
	"github.com/AryanPandeyy/opencap.co/internal/onboarding/domain"
	"github.com/AryanPandeyy/opencap.co/internal/server/interceptors"
)

// Onboarder is the onboarding service the handler delegates to.
type Onboarder interface {
	Onboard(ctx context.Context, userID, sessionID string, in domain.Input) domain.Result
}

// Server implements OnboardingService. The caller must be authenticated.
type Server struct {
	onboardingv1.UnimplementedOnboardingServiceServer
	svc Onboarder
}

// NewServer returns a new Onboarding gRPC server.
func NewServer(svc Onboarder) *Server {
	return &Server{svc: svc}
}

// Onboard validates the request and onboards the caller. Store failures come
// back as success=false with the generic message, never as a gRPC error.
func (s *Server) Onboard(ctx context.Context, req *onboardingv1.OnboardRequest) (*onboardingv1.OnboardResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method Onboard not implemented")
	}
	userID, ok := interceptors.GetUserID(ctx)
	if !ok || userID == "" {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	sessionID, _ := interceptors.GetSessionID(ctx)

	if req.GetCompany() == nil {
		return nil, status.Error(codes.InvalidArgument, "company is required")
	}
	if req.GetUser() == nil {
		return nil, status.Error(codes.InvalidArgument, "user is required")
	}
	in := requestToInput(req)
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res := s.svc.Onboard(ctx, userID, sessionID, in)
	return &onboardingv1.OnboardResponse{
		Success:  res.Success,
		Message:  res.Message,
		PublicID: res.PublicID,
	}, nil
}

func requestToInput(req *onboardingv1.OnboardRequest) domain.Input {
	c, u := req.GetCompany(), req.GetUser()
	return domain.Input{
		Company: domain.CompanyInput{
			Name:                 c.Name,
			IncorporationType:    c.IncorporationType,
			IncorporationDate:    c.IncorporationDate,
			IncorporationCountry: c.IncorporationCountry,
			IncorporationState:   c.IncorporationState,
			StreetAddress:        c.StreetAddress,
			City:                 c.City,
			State:                c.State,
			Zipcode:              c.Zipcode,
			Country:              c.Country,
		},
		User: domain.UserInput{Name: u.Name, Email: u.Email, Title: u.Title},
	}
}
