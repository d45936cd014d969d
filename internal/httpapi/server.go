package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/internal/config"
	"github.com/MarkoPoloResearchLab/engagement/internal/logging"
	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tyemirov/tauth/pkg/sessionvalidator"
	"go.uber.org/zap"
)

const (
	contextKeyClaims        = "auth_claims"
	contextKeyServiceClaims = "service_claims"
	shutdownTimeout         = 5 * time.Second
	readHeaderTimeout       = 5 * time.Second
)

// EngagementService is the subset of engagement.Service served over HTTP.
type EngagementService interface {
	Award(ctx context.Context, userID engagement.UserID, kind engagement.ActionKind, target *engagement.TargetID) (engagement.AwardResult, error)
	Checkin(ctx context.Context, userID engagement.UserID) (engagement.CheckinResult, error)
	GetStats(ctx context.Context, userID engagement.UserID) (engagement.AggregateRecord, error)
	CanPost(ctx context.Context, userID engagement.UserID) (engagement.PostEligibility, error)
	History(ctx context.Context, userID engagement.UserID, limit int) ([]engagement.LedgerEntry, error)
	Eligibility(ctx context.Context, userID engagement.UserID) (map[engagement.DiscountID]bool, error)
	Redeem(ctx context.Context, userID engagement.UserID, discountID engagement.DiscountID) (bool, error)
	Rules() engagement.RuleTable
}

// Run serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, service EngagementService, logger *zap.Logger) error {
	router, err := NewRouter(cfg, service, logger)
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              cfg.HTTPListenAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http api listening", zap.String("addr", cfg.HTTPListenAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// NewRouter builds the gin engine with member and collaborator routes.
func NewRouter(cfg config.Config, service EngagementService, logger *zap.Logger) (*gin.Engine, error) {
	if service == nil {
		return nil, fmt.Errorf("engagement service is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	validator, err := sessionvalidator.New(sessionvalidator.Config{
		SigningKey: []byte(cfg.SessionSigningKey),
		Issuer:     cfg.SessionIssuer,
		CookieName: cfg.SessionCookieName,
	})
	if err != nil {
		return nil, fmt.Errorf("session validator: %w", err)
	}
	handler := &httpHandler{
		logger:  logger,
		service: service,
		cfg:     cfg,
	}
	return setupRouter(cfg, handler, validator, newRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)), nil
}

func setupRouter(cfg config.Config, handler *httpHandler, validator *sessionvalidator.Validator, limiter *rateLimiter) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.GinMiddleware(handler.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept", "Authorization"},
		ExposeHeaders:    []string{logging.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(validator.GinMiddleware(contextKeyClaims))
	api.Use(limiter.middleware(sessionUserKey))

	api.POST("/checkin", handler.handleCheckin)
	api.GET("/stats", handler.handleStats)
	api.GET("/can-post", handler.handleCanPost)
	api.GET("/history", handler.handleHistory)
	api.GET("/discounts", handler.handleDiscounts)
	api.POST("/discounts/:discount_id/redeem", handler.handleRedeem)

	internal := router.Group("/internal/v1")
	internal.Use(serviceTokenMiddleware(cfg.ServiceSigningKey, cfg.ServiceTokenIssuer))

	internal.POST("/awards", handler.handleAward)
	internal.GET("/users/:user_id/stats", handler.handleUserStats)
	internal.GET("/users/:user_id/can-post", handler.handleUserCanPost)
	internal.GET("/users/:user_id/discounts", handler.handleUserDiscounts)

	return router
}

func getClaims(ctx *gin.Context) *sessionvalidator.Claims {
	claimsValue, ok := ctx.Get(contextKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := claimsValue.(*sessionvalidator.Claims)
	return claims
}

func sessionUserKey(ctx *gin.Context) string {
	claims := getClaims(ctx)
	if claims == nil {
		return ctx.ClientIP()
	}
	return claims.GetUserID()
}
