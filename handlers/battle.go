// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mug-tournament/cliparse"
	"github.com/danielhkuo/mug-tournament/middleware"
	"github.com/danielhkuo/mug-tournament/models"
)

type BattleHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewBattleHandler(db *sql.DB, cfg cliparse.Config) *BattleHandler {
	return &BattleHandler{db: db, cfg: cfg}
}

// GetBattle handles GET /battle
// Returns two distinct random mugs for the next comparison. An empty or
// one-mug catalog is a deployment problem, so it reports 500, not 400.
func (h *BattleHandler) GetBattle(w http.ResponseWriter, r *http.Request) {
	mug1, mug2, err := RandomPair(h.db)
	if err != nil {
		slog.Error("failed to pick battle pair", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to get battle pair")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BattleResponse{
		Mug1: mug1,
		Mug2: mug2,
	})
}
