// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - Env: Deployment environment ("production" selects the hosted store)
  - DatabaseType: "sqlite" or "postgres"
  - DatabaseURL: PostgreSQL connection string, or SQLite file path

# CLI Flags

	-p  Server port
	-d  Database URL or file path
	-t  Database type
	-e  Environment

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	APP_ENV       → -e

CLI flags take precedence over environment variables.

# Store Selection

Outside production the server runs against a local SQLite file
(mug-tournament.db by default) with no further configuration. In
production the database type defaults to postgres and DATABASE_URL is
mandatory: starting without it is a configuration error, not a degraded
mode.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
