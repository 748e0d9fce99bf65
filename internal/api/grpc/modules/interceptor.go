package modules

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oshokin/ab-modules/internal/logger"
)

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "x-request-id"

// UnaryLoggingInterceptor tags each call with a request ID, scopes the context
// logger with it and logs the outcome.
func UnaryLoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	requestID := uuid.NewString()
	startedAt := time.Now()

	ctx = logger.WithKV(ctx, "request_id", requestID, "method", info.FullMethod)

	// Fails outside a real transport stream, e.g. in unit tests.
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID)) //nolint:errcheck // Best effort.

	resp, err := handler(ctx, req)

	code := status.Code(err)
	if err != nil {
		logger.WarnKV(ctx, "RPC failed", "code", code.String(), "duration", time.Since(startedAt), "error", err)

		return resp, err
	}

	logger.DebugKV(ctx, "RPC handled", "code", code.String(), "duration", time.Since(startedAt))

	return resp, nil
}
