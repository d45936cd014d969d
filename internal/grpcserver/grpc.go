package grpcserver

import (
	"github.com/MarkoPoloResearchLab/engagement/api/engagement/v1"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Options configures NewGRPCServer.
type Options struct {
	Logger            *zap.Logger
	ServiceSigningKey string
	ServiceIssuer     string
}

// NewGRPCServer builds a grpc.Server serving the engagement service and the standard
// health service.
func NewGRPCServer(engagementService EngagementService, options Options) (*grpc.Server, *health.Server) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(logger),
			ServiceTokenInterceptor(options.ServiceSigningKey, options.ServiceIssuer),
		),
	)
	engagementv1.RegisterEngagementServiceServer(server, NewEngagementServiceServer(engagementService))
	healthServer := health.NewServer()
	healthServer.SetServingStatus(engagementv1.EngagementService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)
	return server, healthServer
}
