package grpcserver

import (
	"context"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/internal/servicetoken"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationMetadataKey = "authorization"
	healthServicePrefix      = "/grpc.health.v1.Health/"
)

// ServiceTokenInterceptor rejects calls without a valid collaborator bearer token.
// Health checks are exempt.
func ServiceTokenInterceptor(signingKey string, issuer string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, request any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if strings.HasPrefix(info.FullMethod, healthServicePrefix) {
			return handler(ctx, request)
		}
		incoming, _ := metadata.FromIncomingContext(ctx)
		values := incoming.Get(authorizationMetadataKey)
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}
		token, ok := servicetoken.FromAuthorization(values[0])
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}
		if _, err := servicetoken.Parse(signingKey, issuer, token); err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid service token")
		}
		return handler(ctx, request)
	}
}

// LoggingInterceptor logs every unary call with its status code.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	grpcLogger := logger.Named("grpc")
	return func(ctx context.Context, request any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		started := time.Now()
		response, err := handler(ctx, request)
		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(started)),
		}
		switch code {
		case codes.OK, codes.InvalidArgument, codes.NotFound, codes.FailedPrecondition, codes.Unauthenticated:
			grpcLogger.Info("rpc", fields...)
		default:
			grpcLogger.Error("rpc", append(fields, zap.Error(err))...)
		}
		return response, err
	}
}
