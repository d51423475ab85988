// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mug Tournament API server.

Mug Tournament is a pairwise-comparison ranking service: voters see two
mugs at a time, pick a favorite, and the win/loss records drive a
win-percentage leaderboard.

# Starting the Server

The server runs against a local SQLite file with no configuration:

	go run main.go

In production it serves from a hosted PostgreSQL store:

	APP_ENV=production DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8080 -t postgres -d "postgres://..."

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - APP_ENV (-e): Environment; "production" requires DATABASE_URL
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string, or SQLite file path

A .env file in the working directory is loaded automatically.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers plus the ranking/matchmaking/vote data layer
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - models: Request/response and domain types
  - db: Schema creation and catalog seeding
  - cliparse: Flag and environment configuration

Startup is strict: an unreachable store, failed schema creation, or
failed seeding exits the process rather than serving degraded.
*/
package main
