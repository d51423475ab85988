// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - VoteRequest: winnerId, loserId

# Response Types

Types for JSON responses:

  - BattleResponse: mug1, mug2
  - VoteResponse: success
  - ErrorResponse: error

# Domain Types

  - Mug: a votable item with win/loss counters and a derived winPercentage
  - Vote: one immutable battle outcome

Mug counters are mutated only by vote recording; votes are append-only
and never updated or deleted.
*/
package models
