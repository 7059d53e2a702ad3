package interceptors

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/AryanPandeyy/opencap.co/internal/security"
)

func okHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "success", nil
}

func withAuthorization(v string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", v))
}

func TestAuthUnary_PublicMethod(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	interceptor := AuthUnary(tokens, map[string]bool{"/test.Service/PublicMethod": true})

	resp, err := interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/PublicMethod",
	}, okHandler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "success" {
		t.Errorf("response = %v, want %q", resp, "success")
	}
}

func TestAuthUnary_ProtectedMethod_Rejected(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	testCases := []struct {
		name string
		ctx  context.Context
	}{
		{"no metadata", context.Background()},
		{"no bearer prefix", withAuthorization("Basic dXNlcjpwYXNz")},
		{"empty bearer", withAuthorization("Bearer ")},
		{"garbage token", withAuthorization("Bearer not-a-jwt")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			interceptor := AuthUnary(tokens, nil)
			called := false
			_, err := interceptor(tc.ctx, "request", &grpc.UnaryServerInfo{
				FullMethod: "/test.Service/ProtectedMethod",
			}, func(ctx context.Context, req interface{}) (interface{}, error) {
				called = true
				return nil, nil
			})
			if status.Code(err) != codes.Unauthenticated {
				t.Errorf("code = %v, want %v", status.Code(err), codes.Unauthenticated)
			}
			if called {
				t.Error("handler should not be called")
			}
		})
	}
}

func TestAuthUnary_ProtectedMethod_ValidToken(t *testing.T) {
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	token, _, err := tokens.IssueAccess("session-1", "user-1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	interceptor := AuthUnary(tokens, nil)

	var gotUser, gotSession string
	_, err = interceptor(withAuthorization("bearer "+token), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, func(ctx context.Context, req interface{}) (interface{}, error) {
		gotUser, _ = GetUserID(ctx)
		gotSession, _ = GetSessionID(ctx)
		return "success", nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if gotUser != "user-1" || gotSession != "session-1" {
		t.Errorf("identity = %q/%q, want user-1/session-1", gotUser, gotSession)
	}
}

type failingValidator struct{}

func (failingValidator) ValidateAccess(string) (string, string, error) {
	return "", "", errors.New("expired")
}

func TestAuthUnary_ValidatorError(t *testing.T) {
	interceptor := AuthUnary(failingValidator{}, nil)
	_, err := interceptor(withAuthorization("Bearer abc"), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, okHandler)
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestAuthUnary_NilValidator(t *testing.T) {
	interceptor := AuthUnary(nil, map[string]bool{"/test.Service/PublicMethod": true})

	_, err := interceptor(withAuthorization("Bearer abc"), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/ProtectedMethod",
	}, okHandler)
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("code = %v, want Unauthenticated", status.Code(err))
	}

	resp, err := interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/test.Service/PublicMethod",
	}, okHandler)
	if err != nil || resp != "success" {
		t.Errorf("public method = %v, %v", resp, err)
	}
}

func TestExtractBearer(t *testing.T) {
	testCases := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"none", context.Background(), ""},
		{"mixed case", withAuthorization("BeArEr tok"), "tok"},
		{"surrounding space", withAuthorization("  Bearer   tok  "), "tok"},
		{"too short", withAuthorization("Bear"), ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractBearer(tc.ctx); got != tc.want {
				t.Errorf("extractBearer = %q, want %q", got, tc.want)
			}
		})
	}
}
