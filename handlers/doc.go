// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Mug Tournament API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - BattleHandler: Random pair selection for the next comparison
  - LeaderboardHandler: Ranked catalog retrieval
  - VoteHandler: Battle outcome recording

Handlers are created via constructor functions that accept *sql.DB and Config:

	battleHandler := handlers.NewBattleHandler(db, cfg)

# Routes

	GET  /battle      → GetBattle (two distinct random mugs)
	GET  /leaderboard → GetLeaderboard (ranked catalog)
	GET  /mugs        → GetMugs (same ranked catalog)
	POST /vote        → SubmitVote ({winnerId, loserId})

# Ranking

The ranking query is implemented in rankings.go:

	mugs, err := handlers.RankedMugs(db)

Win percentage is derived in SQL on every read - 0.5 for a mug with no
battles, wins/(wins+losses) otherwise - ordered by win percentage then
wins, both descending.

# Vote Recording

RecordVote wraps the three-part write (winner wins+1, loser losses+1,
vote row append) in one database transaction. Atomicity comes from the
store's transaction mechanism, not in-process locking, so concurrent
votes never interleave partial counter updates.

# Errors

The data layer reports sentinel errors that handlers map to status codes:

  - ErrNotEnoughMugs → 500 (an empty catalog is an operational fault)
  - ErrSelfVote, ErrUnknownMug → 400
*/
package handlers
