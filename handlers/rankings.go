// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/danielhkuo/mug-tournament/models"
)

var (
	ErrNotEnoughMugs = errors.New("need at least 2 mugs for a battle")
	ErrSelfVote      = errors.New("winner and loser must differ")
	ErrUnknownMug    = errors.New("unknown mug id")
)

// RankedMugs returns the full catalog ordered by win percentage, ties
// broken by wins. Win percentage is computed in the query: a mug with no
// battles sits at the neutral 0.5, above every losing record and below
// every winning one.
func RankedMugs(db *sql.DB) ([]models.Mug, error) {
	rows, err := db.Query(`
		SELECT
			id,
			name,
			filename,
			wins,
			losses,
			CASE
				WHEN (wins + losses) = 0 THEN 0.5
				ELSE CAST(wins AS REAL) / (wins + losses)
			END AS win_percentage
		FROM mugs
		ORDER BY win_percentage DESC, wins DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mugs: %w", err)
	}
	defer rows.Close()

	mugs := []models.Mug{}
	for rows.Next() {
		var m models.Mug
		if err := rows.Scan(&m.ID, &m.Name, &m.Filename, &m.Wins, &m.Losses, &m.WinPercentage); err != nil {
			return nil, fmt.Errorf("failed to scan mug: %w", err)
		}
		mugs = append(mugs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mugs: %w", err)
	}

	return mugs, nil
}

// RandomPair picks two distinct mugs uniformly at random for a battle.
// Returns ErrNotEnoughMugs when the catalog has fewer than two entries.
func RandomPair(db *sql.DB) (models.Mug, models.Mug, error) {
	mugs, err := RankedMugs(db)
	if err != nil {
		return models.Mug{}, models.Mug{}, err
	}
	if len(mugs) < 2 {
		return models.Mug{}, models.Mug{}, ErrNotEnoughMugs
	}

	rand.Shuffle(len(mugs), func(i, j int) {
		mugs[i], mugs[j] = mugs[j], mugs[i]
	})

	return mugs[0], mugs[1], nil
}

// RecordVote applies one battle outcome in a single transaction: the
// winner's wins and the loser's losses each go up by one and a vote row is
// appended. Either all three mutations commit or none do. An id that
// matches no mug rolls everything back and reports ErrUnknownMug.
func RecordVote(db *sql.DB, winnerID, loserID int64) error {
	if winnerID == loserID {
		return ErrSelfVote
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE mugs SET wins = wins + 1 WHERE id = $1`, winnerID)
	if err != nil {
		return fmt.Errorf("failed to update winner: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check winner update: %w", err)
	} else if n == 0 {
		return fmt.Errorf("%w: winner %d", ErrUnknownMug, winnerID)
	}

	res, err = tx.Exec(`UPDATE mugs SET losses = losses + 1 WHERE id = $1`, loserID)
	if err != nil {
		return fmt.Errorf("failed to update loser: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check loser update: %w", err)
	} else if n == 0 {
		return fmt.Errorf("%w: loser %d", ErrUnknownMug, loserID)
	}

	_, err = tx.Exec(`
		INSERT INTO votes (winner_id, loser_id, timestamp)
		VALUES ($1, $2, $3)
	`, winnerID, loserID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}

	return nil
}
