package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ArchiveConfig configures the S3-compatible ledger export.
type ArchiveConfig struct {
	Bucket          string `env:"ENGAGEMENT_ARCHIVE_BUCKET"`
	Region          string `env:"ENGAGEMENT_ARCHIVE_REGION" envDefault:"auto"`
	Endpoint        string `env:"ENGAGEMENT_ARCHIVE_ENDPOINT"`
	AccessKeyID     string `env:"ENGAGEMENT_ARCHIVE_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"ENGAGEMENT_ARCHIVE_SECRET_ACCESS_KEY"`
	Prefix          string `env:"ENGAGEMENT_ARCHIVE_PREFIX" envDefault:"ledger"`
}

// LoadArchiveConfig reads archive settings from the environment.
func LoadArchiveConfig() (ArchiveConfig, error) {
	var cfg ArchiveConfig
	if err := env.Parse(&cfg); err != nil {
		return ArchiveConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports missing required archive settings.
func (cfg ArchiveConfig) Validate() error {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return fmt.Errorf(errorMessageRequired, "ENGAGEMENT_ARCHIVE_BUCKET")
	}
	if (cfg.AccessKeyID == "") != (cfg.SecretAccessKey == "") {
		return fmt.Errorf("archive access key id and secret must be set together")
	}
	return nil
}
