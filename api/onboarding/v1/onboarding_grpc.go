package onboardingv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AryanPandeyy/opencap.co/api/codec"
)

const (
	OnboardingService_ServiceName            = "onboarding.v1.OnboardingService"
	OnboardingService_Onboard_FullMethodName = "/onboarding.v1.OnboardingService/Onboard"
)

// OnboardingServiceClient is the client API for OnboardingService.
type OnboardingServiceClient interface {
	Onboard(ctx context.Context, in *OnboardRequest, opts ...grpc.CallOption) (*OnboardResponse, error)
}

type onboardingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOnboardingServiceClient returns a client that sends requests with the JSON codec.
func NewOnboardingServiceClient(cc grpc.ClientConnInterface) OnboardingServiceClient {
	return &onboardingServiceClient{cc}
}

func (c *onboardingServiceClient) Onboard(ctx context.Context, in *OnboardRequest, opts ...grpc.CallOption) (*OnboardResponse, error) {
	out := new(OnboardResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, OnboardingService_Onboard_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// OnboardingServiceServer is the server API for OnboardingService.
// Implementations must embed UnimplementedOnboardingServiceServer.
type OnboardingServiceServer interface {
	Onboard(context.Context, *OnboardRequest) (*OnboardResponse, error)
	mustEmbedUnimplementedOnboardingServiceServer()
}

// UnimplementedOnboardingServiceServer must be embedded by server implementations.
type UnimplementedOnboardingServiceServer struct{}

func (UnimplementedOnboardingServiceServer) Onboard(context.Context, *OnboardRequest) (*OnboardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Onboard not implemented")
}
func (UnimplementedOnboardingServiceServer) mustEmbedUnimplementedOnboardingServiceServer() {}

// RegisterOnboardingServiceServer registers srv on s.
func RegisterOnboardingServiceServer(s grpc.ServiceRegistrar, srv OnboardingServiceServer) {
	s.RegisterService(&OnboardingService_ServiceDesc, srv)
}

func _OnboardingService_Onboard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OnboardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OnboardingServiceServer).Onboard(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OnboardingService_Onboard_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OnboardingServiceServer).Onboard(ctx, req.(*OnboardRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OnboardingService_ServiceDesc is the grpc.ServiceDesc for OnboardingService.
var OnboardingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: OnboardingService_ServiceName,
	HandlerType: (*OnboardingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Onboard",
			Handler:    _OnboardingService_Onboard_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/onboarding/v1/onboarding.go",
}
