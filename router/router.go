// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/mug-tournament/cliparse"
	"github.com/danielhkuo/mug-tournament/handlers"
	"github.com/danielhkuo/mug-tournament/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	battleHandler := handlers.NewBattleHandler(db, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Battle and voting
	mux.HandleFunc("GET /battle", middleware.WithLogging(battleHandler.GetBattle))
	mux.HandleFunc("POST /vote", middleware.WithLogging(voteHandler.SubmitVote))

	// Rankings
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.GetLeaderboard))
	mux.HandleFunc("GET /mugs", middleware.WithLogging(leaderboardHandler.GetMugs))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mug-tournament API v1"))
	})

	return mux
}
