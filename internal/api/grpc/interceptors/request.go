package interceptors

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, длительность, код/ошибка (аналог HTTP request logger).
// Клиентские ошибки (InvalidArgument, FailedPrecondition) пишутся в Warn, остальные — в Error.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		latency := time.Since(start)

		attrs := []any{"method", info.FullMethod, "latency_ms", latency.Milliseconds()}
		if err != nil {
			st, _ := status.FromError(err)
			attrs = append(attrs, "grpc_code", st.Code().String(), "error", st.Message())
			switch st.Code() {
			case codes.InvalidArgument, codes.FailedPrecondition:
				log.Warn("grpc request", attrs...)
			default:
				log.Error("grpc request", attrs...)
			}
			return resp, err
		}
		attrs = append(attrs, "grpc_code", codes.OK.String())
		log.Info("grpc request", attrs...)
		return resp, nil
	}
}

// RecoveryUnaryInterceptor превращает панику в обработчике в codes.Internal, как gin.Recovery для HTTP.
func RecoveryUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("grpc panic", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
				err = status.Errorf(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
