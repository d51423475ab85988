// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mug-tournament/cliparse"
	"github.com/danielhkuo/mug-tournament/middleware"
	"github.com/danielhkuo/mug-tournament/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// SubmitVote handles POST /vote
// Validation failures are 400s and leave the store untouched; storage
// failures are 500s and are never partially applied or retried.
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid vote data")
		return
	}

	if req.WinnerID == 0 || req.LoserID == 0 || req.WinnerID == req.LoserID {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid vote data")
		return
	}

	err := RecordVote(h.db, req.WinnerID, req.LoserID)
	if err != nil {
		if errors.Is(err, ErrSelfVote) || errors.Is(err, ErrUnknownMug) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid vote data")
			return
		}
		slog.Error("failed to record vote", "error", err, "winner_id", req.WinnerID, "loser_id", req.LoserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "winner_id", req.WinnerID, "loser_id", req.LoserID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{Success: true})
}
