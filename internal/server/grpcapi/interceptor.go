// Package grpcapi applies the access guard to gRPC surfaces. The server's
// primary transport is HTTP; this interceptor lets internal gRPC services
// reuse the same credential pipeline.
package grpcapi

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/authd/internal/common"
	"github.com/dmitrijs2005/authd/internal/logging"
	"github.com/dmitrijs2005/authd/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// errUnauthenticated is the uniform response: the rejection reason stays in
// the server logs.
var errUnauthenticated = status.Error(codes.Unauthenticated, "unauthenticated")

// UnaryServerInterceptor gates unary calls with the guard: bearer token from
// the authorization metadata key, codec verification, blacklist check. On
// success the claims are placed on the handler context.
func UnaryServerInterceptor(guard *auth.Guard, logger logging.Logger) grpc.UnaryServerInterceptor {
	log := logger.With("module", "grpcapi")

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := uuid.New().String()

		token, reason := tokenFromMetadata(ctx)
		if reason == auth.RejectNone {
			var claims *auth.TokenClaims
			claims, reason = guard.Evaluate(token)
			if reason == auth.RejectNone {
				ctx = auth.WithClaims(ctx, claims)
				ctx = auth.WithBearerToken(ctx, token)
				ctx = auth.WithRequestID(ctx, requestID)
				return handler(ctx, req)
			}
		}

		log.Warn(ctx, "authentication failed",
			"request_id", requestID,
			"method", info.FullMethod,
			"reason", string(reason),
		)
		return nil, errUnauthenticated
	}
}

func tokenFromMetadata(ctx context.Context) (string, auth.RejectReason) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", auth.RejectMissing
	}

	values := md.Get(strings.ToLower(common.AuthorizationHeaderName))
	if len(values) == 0 {
		return "", auth.RejectMissing
	}

	return auth.ParseBearer(values[0])
}
