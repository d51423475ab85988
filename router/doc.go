// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Mug Tournament API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Battle and voting:

	GET  /battle - Two distinct random mugs for the next comparison
	POST /vote   - Record a battle outcome ({winnerId, loserId})

Rankings:

	GET /leaderboard - Catalog ordered by win percentage
	GET /mugs        - Same catalog, same order

# Handler Initialization

The router creates handler instances with dependency injection:

	battleHandler := handlers.NewBattleHandler(db, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
