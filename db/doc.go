// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and catalog seeding.

# Schema Creation

CreateSchema initializes all required tables for the configured dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - mugs: The votable catalog with win/loss counters
  - votes: Append-only battle outcomes

# Relationships

	mugs 1──* votes (winner_id)
	mugs 1──* votes (loser_id)

# Seeding

Seed inserts the fixed mug catalog in one transaction when the mugs table
is empty. The unique constraint on mugs.name makes seeding idempotent
across concurrent processes: a duplicate insert from a racing seed is
treated as a no-op.

Run both at startup, before serving traffic:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil { ... }
	if err := db.Seed(conn); err != nil { ... }
*/
package db
