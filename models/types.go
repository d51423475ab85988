// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type VoteRequest struct {
	WinnerID int64 `json:"winnerId"`
	LoserID  int64 `json:"loserId"`
}

// Response types

type VoteResponse struct {
	Success bool `json:"success"`
}

type BattleResponse struct {
	Mug1 Mug `json:"mug1"`
	Mug2 Mug `json:"mug2"`
}

// Domain types

// Mug is a votable item. WinPercentage is derived on every read: 0.5 for
// a mug with no battles, otherwise wins / (wins + losses).
type Mug struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Filename      string  `json:"filename"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"winPercentage"`
}

// Vote is an append-only record of one battle outcome.
// winner_id != loser_id holds for every row.
type Vote struct {
	ID        int64     `json:"id"`
	WinnerID  int64     `json:"winnerId"`
	LoserID   int64     `json:"loserId"`
	Timestamp time.Time `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
