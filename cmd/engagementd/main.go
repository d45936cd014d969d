package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "ENGAGEMENT"

	flagDatabaseURL        = "database-url"
	flagStoreBackend       = "store-backend"
	flagRulesFile          = "rules-file"
	flagTimeZone           = "time-zone"
	flagLogLevel           = "log-level"
	flagLogFile            = "log-file"
	flagRedisAddr          = "redis-addr"
	flagRedisPassword      = "redis-password"
	flagRedisDB            = "redis-db"
	flagCacheTTL           = "cache-ttl"
	flagHTTPListenAddr     = "http-listen-addr"
	flagGRPCListenAddr     = "grpc-listen-addr"
	flagAllowedOrigins     = "allowed-origins"
	flagSessionSigningKey  = "session-signing-key"
	flagSessionIssuer      = "session-issuer"
	flagSessionCookieName  = "session-cookie-name"
	flagServiceSigningKey  = "service-signing-key"
	flagServiceTokenIssuer = "service-token-issuer"
	flagRequestTimeout     = "request-timeout"
	flagRateLimit          = "rate-limit-per-second"
	flagRateLimitBurst     = "rate-limit-burst"
	flagSweepInterval      = "sweep-interval"
	flagSweepBatchSize     = "sweep-batch-size"
	flagUser               = "user"
	flagLimit              = "limit"
	flagService            = "service"
	flagTTL                = "ttl"

	defaultExportLimit = 10000
	defaultTokenTTL    = 24 * time.Hour
)

func main() {
	_ = godotenv.Load()
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "engagementd: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	settings := viper.New()
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "engagementd",
		Short:         "Engagement points service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.String(flagDatabaseURL, "sqlite:///tmp/engagement.db", "database URL (postgres://, mysql://, sqlite:// or a sqlite path)")
	flags.String(flagStoreBackend, config.StoreBackendGorm, "store implementation: gorm or pgx (postgres only)")
	flags.String(flagRulesFile, "", "YAML or JSON rule table; empty uses the built-in rules")
	flags.String(flagTimeZone, "UTC", "IANA time zone that defines calendar days")
	flags.String(flagLogLevel, "info", "log level")
	flags.String(flagLogFile, "", "optional rolling log file")
	flags.String(flagRedisAddr, "", "redis address for the stats cache; empty disables caching")
	flags.String(flagRedisPassword, "", "redis password")
	flags.Int(flagRedisDB, 0, "redis database number")
	flags.Duration(flagCacheTTL, time.Minute, "stats cache ttl")
	flags.Int(flagSweepBatchSize, 500, "accounts examined per freeze sweep")

	cmd.AddCommand(newServeCommand(settings))
	cmd.AddCommand(newSweepCommand(settings))
	cmd.AddCommand(newExportCommand(settings))
	cmd.AddCommand(newTokenCommand(settings))
	return cmd
}

// bindFlags makes every flag of cmd readable through settings, with ENGAGEMENT_* env
// overrides.
func bindFlags(cmd *cobra.Command, settings *viper.Viper) error {
	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if bindErr != nil {
			return
		}
		bindErr = settings.BindPFlag(flag.Name, flag)
	})
	return bindErr
}

func loadConfig(settings *viper.Viper) config.Config {
	return config.Config{
		HTTPListenAddr:     settings.GetString(flagHTTPListenAddr),
		GRPCListenAddr:     settings.GetString(flagGRPCListenAddr),
		DatabaseURL:        settings.GetString(flagDatabaseURL),
		StoreBackend:       settings.GetString(flagStoreBackend),
		RulesFile:          settings.GetString(flagRulesFile),
		TimeZone:           settings.GetString(flagTimeZone),
		AllowedOrigins:     config.ParseAllowedOrigins(settings.GetString(flagAllowedOrigins)),
		SessionSigningKey:  settings.GetString(flagSessionSigningKey),
		SessionIssuer:      settings.GetString(flagSessionIssuer),
		SessionCookieName:  settings.GetString(flagSessionCookieName),
		ServiceSigningKey:  settings.GetString(flagServiceSigningKey),
		ServiceTokenIssuer: settings.GetString(flagServiceTokenIssuer),
		RequestTimeout:     settings.GetDuration(flagRequestTimeout),
		RateLimitPerSecond: settings.GetFloat64(flagRateLimit),
		RateLimitBurst:     settings.GetInt(flagRateLimitBurst),
		RedisAddr:          settings.GetString(flagRedisAddr),
		RedisPassword:      settings.GetString(flagRedisPassword),
		RedisDB:            settings.GetInt(flagRedisDB),
		CacheTTL:           settings.GetDuration(flagCacheTTL),
		SweepInterval:      settings.GetDuration(flagSweepInterval),
		SweepBatchSize:     settings.GetInt(flagSweepBatchSize),
		LogLevel:           settings.GetString(flagLogLevel),
		LogFile:            settings.GetString(flagLogFile),
	}
}
