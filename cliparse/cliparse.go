// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Environment constants
const (
	EnvProduction = "production"
)

// Database type constants
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// DefaultSQLitePath is the local file-backed store used outside production.
const DefaultSQLitePath = "mug-tournament.db"

type Config struct {
	Port         int
	Env          string
	DatabaseURL  string
	DatabaseType string
}

// ParseFlags validates flags and resolves the database configuration.
// Production requires a hosted Postgres URL; any other environment falls
// back to a local SQLite file automatically.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mug-tournament", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres) or file path (sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Env, "e", "", "Environment (production selects the hosted store)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.Env == "" {
		cfg.Env = os.Getenv("APP_ENV")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}

	// Production serves from the hosted store and must not start without
	// credentials for it.
	if cfg.Env == EnvProduction {
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DBTypePostgres
		}
		if cfg.DatabaseType == DBTypePostgres && cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL required in production (use -d or DATABASE_URL env)")
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DBTypeSQLite
	}

	switch cfg.DatabaseType {
	case DBTypeSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLitePath
		}
	case DBTypePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	return cfg, nil
}
