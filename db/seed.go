// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// mugFiles is the fixed catalog. A hardcoded list rather than a directory
// scan keeps seeding reproducible regardless of what is on the deployment
// filesystem.
var mugFiles = []string{
	"acadia.png", "aqua.png", "bacteria.png", "beatles.png", "bicycles.png",
	"blue-lavender.png", "blue-white.png", "blue.png", "breathe.png", "california.png",
	"carbapenem.png", "cat.png", "christmas.png", "clay.png", "efron.png",
	"friends.png", "heaven.png", "how-you-doin.png", "internet.png", "journal-news.png",
	"kensington.png", "lamour-toujours.png", "milagro.png", "montreal.png", "nechama.png",
	"olympia.png", "pink.png", "polka-dot.png", "presidents.png", "rabbit.png",
	"sleep.png", "st-donat.png", "vibras.png",
}

// Seed populates the mugs table from the fixed catalog if it is empty.
// Safe to call multiple times: a non-empty table is left untouched, and a
// racing seed from another process trips the unique name constraint and is
// treated as a no-op.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM mugs`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count mugs: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, file := range mugFiles {
		name := mugName(file)
		_, err := tx.Exec(`
			INSERT INTO mugs (name, filename) VALUES ($1, $2)
		`, name, file)
		if err != nil {
			if isUniqueViolation(err) {
				// Another process seeded first
				slog.Info("mugs already seeded by another process")
				return nil
			}
			return fmt.Errorf("failed to seed mug %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	slog.Info("seeded mugs", "count", len(mugFiles))
	return nil
}

// mugName derives a display name from an image filename:
// strip the extension, separators become spaces.
func mugName(filename string) string {
	name := strings.TrimSuffix(filename, ".png")
	return strings.ReplaceAll(name, "-", " ")
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // pq
}
