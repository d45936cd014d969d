package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultHTTPListenAddr  = ":8080"
	defaultGRPCListenAddr  = ":7070"
	defaultDatabaseURL     = "sqlite:///tmp/engagement.db"
	defaultStoreBackend    = StoreBackendGorm
	defaultTimeZone        = "UTC"
	defaultAllowedOrigin   = "http://localhost:8000"
	defaultSessionIssuer   = "tauth"
	defaultSessionCookie   = "app_session"
	defaultServiceIssuer   = "engagement-collaborators"
	defaultRequestTimeout  = 3 * time.Second
	defaultRateLimit       = 5.0
	defaultRateLimitBurst  = 10
	defaultCacheTTL        = time.Minute
	defaultSweepInterval   = time.Hour
	defaultSweepBatchSize  = 500
	defaultHistoryLimit    = 20
	maximumHistoryLimit    = 200
	StoreBackendGorm       = "gorm"
	StoreBackendPgx        = "pgx"
	errorMessageRequired   = "%s is required"
	errorMessageNotAllowed = "%s must be one of %s"
)

// Config aggregates runtime settings for engagementd.
type Config struct {
	HTTPListenAddr string
	GRPCListenAddr string
	DatabaseURL    string
	StoreBackend   string
	RulesFile      string
	TimeZone       string

	AllowedOrigins     []string
	SessionSigningKey  string
	SessionIssuer      string
	SessionCookieName  string
	ServiceSigningKey  string
	ServiceTokenIssuer string
	RequestTimeout     time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	SweepInterval  time.Duration
	SweepBatchSize int

	LogLevel string
	LogFile  string
}

// Validate fills defaults and ensures the configuration contains sane values for
// serving traffic.
func (cfg *Config) Validate() error {
	if err := cfg.ValidateCore(); err != nil {
		return err
	}
	if len(cfg.SessionSigningKey) == 0 {
		return fmt.Errorf(errorMessageRequired, "session signing key")
	}
	if len(cfg.ServiceSigningKey) == 0 {
		return fmt.Errorf(errorMessageRequired, "service signing key")
	}
	if strings.TrimSpace(cfg.SessionCookieName) == "" {
		return fmt.Errorf(errorMessageRequired, "session cookie name")
	}
	return nil
}

// ValidateCore fills defaults and checks the settings every command needs: storage,
// calendar time zone, cache and sweep tuning. Transport secrets are not required.
func (cfg *Config) ValidateCore() error {
	cfg.HTTPListenAddr = defaultIfEmpty(cfg.HTTPListenAddr, defaultHTTPListenAddr)
	cfg.GRPCListenAddr = defaultIfEmpty(cfg.GRPCListenAddr, defaultGRPCListenAddr)
	cfg.DatabaseURL = defaultIfEmpty(cfg.DatabaseURL, defaultDatabaseURL)
	cfg.StoreBackend = strings.ToLower(defaultIfEmpty(cfg.StoreBackend, defaultStoreBackend))
	cfg.TimeZone = defaultIfEmpty(cfg.TimeZone, defaultTimeZone)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigin}
	}
	cfg.SessionIssuer = defaultIfEmpty(cfg.SessionIssuer, defaultSessionIssuer)
	cfg.SessionCookieName = defaultIfEmpty(cfg.SessionCookieName, defaultSessionCookie)
	cfg.ServiceTokenIssuer = defaultIfEmpty(cfg.ServiceTokenIssuer, defaultServiceIssuer)
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.RateLimitPerSecond <= 0 {
		cfg.RateLimitPerSecond = defaultRateLimit
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = defaultRateLimitBurst
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if cfg.SweepBatchSize <= 0 {
		cfg.SweepBatchSize = defaultSweepBatchSize
	}

	if cfg.StoreBackend != StoreBackendGorm && cfg.StoreBackend != StoreBackendPgx {
		return fmt.Errorf(errorMessageNotAllowed, "store backend", StoreBackendGorm+", "+StoreBackendPgx)
	}
	if _, err := time.LoadLocation(cfg.TimeZone); err != nil {
		return fmt.Errorf("time zone %q: %w", cfg.TimeZone, err)
	}
	return nil
}

// Location returns the time zone that defines calendar days.
func (cfg Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return time.UTC
	}
	return location
}

// CacheEnabled reports whether a redis stats cache is configured.
func (cfg Config) CacheEnabled() bool {
	return strings.TrimSpace(cfg.RedisAddr) != ""
}

func defaultIfEmpty(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// ParseAllowedOrigins splits comma-delimited origins into a slice.
func ParseAllowedOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}

// DefaultHistoryLimit is the page size used when a caller gives no limit.
func DefaultHistoryLimit() int {
	return defaultHistoryLimit
}

// MaximumHistoryLimit caps caller-provided history limits.
func MaximumHistoryLimit() int {
	return maximumHistoryLimit
}
