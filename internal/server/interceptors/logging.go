package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnary returns a unary server interceptor that logs one line per RPC with
// method, status code, duration, client IP and caller identity. Server-side
// failures (Internal, Unknown, Unavailable, DataLoss) log at error level.
// skipMethods is the set of full method names to not log (e.g. the health check).
func LoggingUnary(log *slog.Logger, skipMethods map[string]bool) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if skipMethods[info.FullMethod] {
			return resp, err
		}
		code := status.Code(err)
		userID, _ := GetUserID(ctx)
		attrs := []any{
			slog.String("full_method", info.FullMethod),
			slog.String("status_code", code.String()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", ClientIP(ctx)),
		}
		if userID != "" {
			attrs = append(attrs, slog.String("user_id", userID))
		}
		level := slog.LevelInfo
		switch code {
		case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
			level = slog.LevelError
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		log.Log(ctx, level, "grpc request", attrs...)
		return resp, err
	}
}
