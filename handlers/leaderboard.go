// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mug-tournament/cliparse"
	"github.com/danielhkuo/mug-tournament/middleware"
)

type LeaderboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewLeaderboardHandler(db *sql.DB, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{db: db, cfg: cfg}
}

// GetLeaderboard handles GET /leaderboard
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	mugs, err := RankedMugs(h.db)
	if err != nil {
		slog.Error("failed to fetch leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, mugs)
}

// GetMugs handles GET /mugs
// Alias for the leaderboard: the full catalog comes back in the same
// ranked order. There is no unsorted variant.
func (h *LeaderboardHandler) GetMugs(w http.ResponseWriter, r *http.Request) {
	mugs, err := RankedMugs(h.db)
	if err != nil {
		slog.Error("failed to fetch mugs", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch mugs")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, mugs)
}
