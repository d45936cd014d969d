package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/internal/grpcserver"
	"github.com/MarkoPoloResearchLab/engagement/internal/httpapi"
	"github.com/MarkoPoloResearchLab/engagement/internal/sweeper"
	"github.com/MarkoPoloResearchLab/engagement/internal/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const (
	serviceName             = "engagementd"
	telemetryShutdownBudget = 5 * time.Second
)

func newServeCommand(settings *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP and gRPC APIs and run the freeze sweep",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, settings)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, settings)
		},
	}
	flags := cmd.Flags()
	flags.String(flagHTTPListenAddr, ":8080", "HTTP listen address")
	flags.String(flagGRPCListenAddr, ":7070", "gRPC listen address")
	flags.String(flagAllowedOrigins, "", "comma-separated CORS origins")
	flags.String(flagSessionSigningKey, "", "HS256 key shared with the session issuer")
	flags.String(flagSessionIssuer, "tauth", "expected session token issuer")
	flags.String(flagSessionCookieName, "app_session", "session cookie name")
	flags.String(flagServiceSigningKey, "", "HS256 key for collaborator service tokens")
	flags.String(flagServiceTokenIssuer, "engagement-collaborators", "expected service token issuer")
	flags.Duration(flagRequestTimeout, 3*time.Second, "per-request timeout")
	flags.Float64(flagRateLimit, 5, "member requests per second per user")
	flags.Int(flagRateLimitBurst, 10, "member request burst per user")
	flags.Duration(flagSweepInterval, time.Hour, "freeze sweep interval")
	return cmd
}

func runServe(ctx context.Context, settings *viper.Viper) error {
	shutdownTelemetry, err := telemetry.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownBudget)
		defer cancel()
		_ = shutdownTelemetry(shutdownCtx)
	}()

	rt, err := buildRuntime(ctx, settings, true)
	if err != nil {
		return err
	}
	defer rt.Close()
	cfg := rt.config
	logger := rt.logger

	freezeSweeper, err := sweeper.New(rt.service, sweeper.Options{
		Interval:  cfg.SweepInterval,
		BatchSize: cfg.SweepBatchSize,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	if err := freezeSweeper.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if shutdownErr := freezeSweeper.Shutdown(); shutdownErr != nil {
			logger.Warn("sweeper shutdown error", zap.Error(shutdownErr))
		}
	}()

	listener, err := net.Listen("tcp", cfg.GRPCListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	grpcServer, healthServer := grpcserver.NewGRPCServer(rt.service, grpcserver.Options{
		Logger:            logger,
		ServiceSigningKey: cfg.ServiceSigningKey,
		ServiceIssuer:     cfg.ServiceTokenIssuer,
	})

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return httpapi.Run(groupCtx, cfg, rt.service, logger)
	})
	group.Go(func() error {
		logger.Info("gRPC server starting", zap.String("listen_addr", cfg.GRPCListenAddr))
		if serveErr := grpcServer.Serve(listener); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			return serveErr
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutdown requested")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})
	return group.Wait()
}
