package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/internal/cache/rediscache"
	"github.com/MarkoPoloResearchLab/engagement/internal/config"
	"github.com/MarkoPoloResearchLab/engagement/internal/logging"
	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runtime holds the wired service and the resources that must be released on exit.
type runtime struct {
	config  config.Config
	logger  *zap.Logger
	service *engagement.Service
	closers []func()
}

func (rt *runtime) Close() {
	for index := len(rt.closers) - 1; index >= 0; index-- {
		rt.closers[index]()
	}
	_ = rt.logger.Sync()
}

// buildRuntime loads configuration and wires logger, store, cache and service. When
// requireTransportSecrets is false the signing keys may be empty.
func buildRuntime(ctx context.Context, settings *viper.Viper, requireTransportSecrets bool) (*runtime, error) {
	cfg := loadConfig(settings)
	validate := cfg.ValidateCore
	if requireTransportSecrets {
		validate = cfg.Validate
	}
	if err := validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("logger init: %w", err)
	}
	rt := &runtime{config: cfg, logger: logger}

	rules, err := config.LoadRuleTable(cfg.RulesFile)
	if err != nil {
		rt.Close()
		return nil, err
	}
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.closers = append(rt.closers, closeStore)

	options := []engagement.ServiceOption{
		engagement.WithOperationLogger(logging.NewOperationLogger(logger)),
		engagement.WithLocation(cfg.Location()),
	}
	if cfg.CacheEnabled() {
		client := rediscache.NewClient(rediscache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		rt.closers = append(rt.closers, func() { _ = client.Close() })
		cache := rediscache.New(client, cfg.CacheTTL, logger)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("stats cache unreachable at startup", zap.String("redis_addr", cfg.RedisAddr), zap.Error(err))
		}
		options = append(options, engagement.WithAggregateCache(cache))
	}

	clock := func() int64 { return time.Now().UTC().Unix() }
	service, err := engagement.NewService(store, rules, clock, options...)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("engagement service init: %w", err)
	}
	rt.service = service
	logger.Info("engagement runtime ready",
		zap.String("store_backend", cfg.StoreBackend),
		zap.String("time_zone", cfg.TimeZone),
		zap.Bool("stats_cache", cfg.CacheEnabled()),
	)
	return rt, nil
}
