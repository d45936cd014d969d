package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarkoPoloResearchLab/engagement/internal/config"
	"github.com/MarkoPoloResearchLab/engagement/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/engagement/internal/store/pgstore"
	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	driverPostgres      = "postgres"
	driverSQLite        = "sqlite"
	driverMySQL         = "mysql"
	defaultSQLiteFile   = "engagement.db"
	sqliteBusyTimeoutMs = 5000
)

// openStore opens the configured store and prepares its schema. The returned cleanup
// releases every connection.
func openStore(ctx context.Context, cfg config.Config) (engagement.Store, func(), error) {
	if cfg.StoreBackend == config.StoreBackendPgx {
		driver, _, err := resolveDriver(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if driver != driverPostgres {
			return nil, nil, fmt.Errorf("store backend %q requires a postgres database url", cfg.StoreBackend)
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgx pool: %w", err)
		}
		if err := pgstore.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return pgstore.New(pool), pool.Close, nil
	}

	gormDB, cleanup, err := openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("database open: %w", err)
	}
	if err := gormstore.AutoMigrate(gormDB); err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return gormstore.New(gormDB), func() { _ = cleanup() }, nil
}

func openDatabase(ctx context.Context, dsn string) (*gorm.DB, func() error, error) {
	driver, location, err := resolveDriver(dsn)
	if err != nil {
		return nil, nil, err
	}

	var db *gorm.DB
	gormConfig := &gorm.Config{}
	switch driver {
	case driverPostgres:
		db, err = gorm.Open(postgres.Open(location), gormConfig)
	case driverMySQL:
		db, err = gorm.Open(mysql.Open(location), gormConfig)
	case driverSQLite:
		db, err = gorm.Open(sqlite.Open(location), gormConfig)
	default:
		return nil, nil, fmt.Errorf("unsupported database scheme %q", driver)
	}
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if driver == driverSQLite {
		sqlDB.SetMaxOpenConns(1)
	}
	cleanup := func() error { return sqlDB.Close() }
	return db.WithContext(ctx), cleanup, nil
}

// resolveDriver maps a database url onto a gorm driver name and the location handed to
// that driver.
func resolveDriver(dsn string) (string, string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return driverPostgres, dsn, nil
	}
	if strings.HasPrefix(dsn, "mysql://") {
		location := strings.TrimPrefix(dsn, "mysql://")
		if location == "" {
			return "", "", fmt.Errorf("mysql url has no data source name")
		}
		return driverMySQL, location, nil
	}
	if strings.HasPrefix(dsn, "sqlite://") {
		parsed, err := url.Parse(dsn)
		if err != nil {
			return "", "", fmt.Errorf("parse sqlite url: %w", err)
		}
		path := parsed.Path
		if path == "" {
			path = parsed.Host
		}
		if path == "" || path == "/" {
			path = defaultSQLiteFile
		}
		sqlitePath, err := normalizeSQLitePath(path)
		return driverSQLite, sqlitePath, err
	}
	// Anything else is a direct sqlite path.
	sqlitePath, err := normalizeSQLitePath(dsn)
	return driverSQLite, sqlitePath, err
}

func normalizeSQLitePath(path string) (string, error) {
	if path == ":memory:" {
		return path, nil
	}
	resolved := path
	if !strings.HasPrefix(path, "/") {
		resolved = filepath.Join(".", path)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", resolved, sqliteBusyTimeoutMs), nil
}
