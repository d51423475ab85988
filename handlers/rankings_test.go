// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"math"
	"testing"

	"github.com/danielhkuo/mug-tournament/models"
	"github.com/danielhkuo/mug-tournament/testutil"
)

func TestRankedMugs_EmptyCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)

	mugs, err := RankedMugs(db)
	if err != nil {
		t.Fatalf("RankedMugs failed: %v", err)
	}
	if len(mugs) != 0 {
		t.Errorf("Expected empty result, got %d mugs", len(mugs))
	}
}

func TestRankedMugs_WinPercentage(t *testing.T) {
	db := testutil.SetupTestDB(t)

	tests := []struct {
		name     string
		wins     int
		losses   int
		expected float64
	}{
		{"untested", 0, 0, 0.5},
		{"all wins", 4, 0, 1.0},
		{"all losses", 0, 3, 0.0},
		{"three quarters", 3, 1, 0.75},
		{"one third", 1, 2, 1.0 / 3.0},
	}

	for _, tc := range tests {
		testutil.SeedTestMug(t, db, tc.name, tc.name+".png", tc.wins, tc.losses)
	}

	mugs, err := RankedMugs(db)
	if err != nil {
		t.Fatalf("RankedMugs failed: %v", err)
	}
	if len(mugs) != len(tests) {
		t.Fatalf("Expected %d mugs, got %d", len(tests), len(mugs))
	}

	byName := make(map[string]models.Mug)
	for _, m := range mugs {
		byName[m.Name] = m
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := byName[tc.name]
			if !ok {
				t.Fatalf("Mug %q missing from result", tc.name)
			}
			if math.Abs(m.WinPercentage-tc.expected) > 1e-6 {
				t.Errorf("Expected winPercentage %.4f, got %.4f", tc.expected, m.WinPercentage)
			}
		})
	}
}

func TestRankedMugs_Ordering(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Deliberately seeded out of rank order
	testutil.SeedTestMug(t, db, "loser", "loser.png", 1, 3)      // 0.25
	testutil.SeedTestMug(t, db, "champion", "champion.png", 9, 1) // 0.9
	testutil.SeedTestMug(t, db, "untested", "untested.png", 0, 0) // 0.5
	testutil.SeedTestMug(t, db, "strong", "strong.png", 3, 1)     // 0.75

	mugs, err := RankedMugs(db)
	if err != nil {
		t.Fatalf("RankedMugs failed: %v", err)
	}

	expected := []string{"champion", "strong", "untested", "loser"}
	for i, name := range expected {
		if mugs[i].Name != name {
			t.Errorf("Position %d: expected %q, got %q", i, name, mugs[i].Name)
		}
	}

	// Untested mugs sit at 0.5: above losing records, below winning ones
	for i := 0; i < len(mugs)-1; i++ {
		if mugs[i].WinPercentage < mugs[i+1].WinPercentage {
			t.Errorf("Ordering violated at position %d: %.2f < %.2f", i, mugs[i].WinPercentage, mugs[i+1].WinPercentage)
		}
	}
}

func TestRankedMugs_TieBreakByWins(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// Both at 50%, different volumes
	testutil.SeedTestMug(t, db, "veteran", "veteran.png", 5, 5)
	testutil.SeedTestMug(t, db, "rookie", "rookie.png", 1, 1)

	mugs, err := RankedMugs(db)
	if err != nil {
		t.Fatalf("RankedMugs failed: %v", err)
	}

	if mugs[0].Name != "veteran" {
		t.Errorf("Tie at 0.5 should rank higher wins first, got %q on top", mugs[0].Name)
	}
}

func TestRandomPair_TwoMugs(t *testing.T) {
	db := testutil.SetupTestDB(t)

	id1 := testutil.SeedTestMug(t, db, "acadia", "acadia.png", 0, 0)
	id2 := testutil.SeedTestMug(t, db, "aqua", "aqua.png", 0, 0)

	// With exactly two mugs every draw must return both, in either order
	for i := 0; i < 20; i++ {
		mug1, mug2, err := RandomPair(db)
		if err != nil {
			t.Fatalf("RandomPair failed: %v", err)
		}
		if mug1.ID == mug2.ID {
			t.Fatal("RandomPair returned the same mug twice")
		}
		if (mug1.ID != id1 && mug1.ID != id2) || (mug2.ID != id1 && mug2.ID != id2) {
			t.Fatalf("Unexpected pair (%d, %d)", mug1.ID, mug2.ID)
		}
	}
}

func TestRandomPair_BothOrdersOccur(t *testing.T) {
	db := testutil.SetupTestDB(t)

	id1 := testutil.SeedTestMug(t, db, "acadia", "acadia.png", 0, 0)
	testutil.SeedTestMug(t, db, "aqua", "aqua.png", 0, 0)

	seenFirst := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		mug1, _, err := RandomPair(db)
		if err != nil {
			t.Fatalf("RandomPair failed: %v", err)
		}
		seenFirst[mug1.ID] = true
	}

	// 100 draws never producing both orderings would put the shuffle in doubt
	if !seenFirst[id1] || len(seenFirst) != 2 {
		t.Errorf("Expected both mugs to appear in first position, saw %v", seenFirst)
	}
}

func TestRandomPair_InsufficientData(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		_, _, err := RandomPair(db)
		if !errors.Is(err, ErrNotEnoughMugs) {
			t.Errorf("Expected ErrNotEnoughMugs, got %v", err)
		}
	})

	t.Run("single mug", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		id := testutil.SeedTestMug(t, db, "alone", "alone.png", 0, 0)

		_, _, err := RandomPair(db)
		if !errors.Is(err, ErrNotEnoughMugs) {
			t.Errorf("Expected ErrNotEnoughMugs, got %v", err)
		}

		// No mutation on the error path
		wins, losses := testutil.GetMugCounters(t, db, id)
		if wins != 0 || losses != 0 {
			t.Errorf("Counters changed on failed matchmaking: %d/%d", wins, losses)
		}
	})
}

func TestRecordVote(t *testing.T) {
	db := testutil.SetupTestDB(t)

	winner := testutil.SeedTestMug(t, db, "winner", "winner.png", 2, 1)
	loser := testutil.SeedTestMug(t, db, "loser", "loser.png", 0, 4)
	bystander := testutil.SeedTestMug(t, db, "bystander", "bystander.png", 1, 1)

	if err := RecordVote(db, winner, loser); err != nil {
		t.Fatalf("RecordVote failed: %v", err)
	}

	if wins, losses := testutil.GetMugCounters(t, db, winner); wins != 3 || losses != 1 {
		t.Errorf("Winner counters: expected 3/1, got %d/%d", wins, losses)
	}
	if wins, losses := testutil.GetMugCounters(t, db, loser); wins != 0 || losses != 5 {
		t.Errorf("Loser counters: expected 0/5, got %d/%d", wins, losses)
	}
	if wins, losses := testutil.GetMugCounters(t, db, bystander); wins != 1 || losses != 1 {
		t.Errorf("Bystander counters changed: %d/%d", wins, losses)
	}

	if count := testutil.CountVotes(t, db); count != 1 {
		t.Errorf("Expected exactly 1 vote record, got %d", count)
	}

	// The appended record carries the right ids
	var vote models.Vote
	err := db.QueryRow(`
		SELECT id, winner_id, loser_id, timestamp FROM votes
	`).Scan(&vote.ID, &vote.WinnerID, &vote.LoserID, &vote.Timestamp)
	if err != nil {
		t.Fatalf("Failed to read vote record: %v", err)
	}
	if vote.WinnerID != winner || vote.LoserID != loser {
		t.Errorf("Vote record (%d, %d) does not match (%d, %d)", vote.WinnerID, vote.LoserID, winner, loser)
	}
	if vote.Timestamp.IsZero() {
		t.Error("Vote record has a zero timestamp")
	}
}

func TestRecordVote_SelfVote(t *testing.T) {
	db := testutil.SetupTestDB(t)

	id := testutil.SeedTestMug(t, db, "acadia", "acadia.png", 2, 2)

	err := RecordVote(db, id, id)
	if !errors.Is(err, ErrSelfVote) {
		t.Fatalf("Expected ErrSelfVote, got %v", err)
	}

	if wins, losses := testutil.GetMugCounters(t, db, id); wins != 2 || losses != 2 {
		t.Errorf("Counters changed on rejected self-vote: %d/%d", wins, losses)
	}
	if count := testutil.CountVotes(t, db); count != 0 {
		t.Errorf("Vote record appended on rejected self-vote: %d", count)
	}
}

func TestRecordVote_UnknownMug(t *testing.T) {
	db := testutil.SetupTestDB(t)

	known := testutil.SeedTestMug(t, db, "acadia", "acadia.png", 1, 0)

	t.Run("unknown winner", func(t *testing.T) {
		err := RecordVote(db, 9999, known)
		if !errors.Is(err, ErrUnknownMug) {
			t.Fatalf("Expected ErrUnknownMug, got %v", err)
		}
	})

	t.Run("unknown loser", func(t *testing.T) {
		err := RecordVote(db, known, 9999)
		if !errors.Is(err, ErrUnknownMug) {
			t.Fatalf("Expected ErrUnknownMug, got %v", err)
		}
	})

	// The winner update from the unknown-loser attempt must have rolled back
	if wins, losses := testutil.GetMugCounters(t, db, known); wins != 1 || losses != 0 {
		t.Errorf("Partial update leaked: %d/%d", wins, losses)
	}
	if count := testutil.CountVotes(t, db); count != 0 {
		t.Errorf("Vote record appended on rejected vote: %d", count)
	}
}

// TestVoteCountConsistency checks the store-wide invariant: total votes,
// sum of wins, and sum of losses all agree after a batch of votes.
func TestVoteCountConsistency(t *testing.T) {
	db := testutil.SetupTestDB(t)

	ids := []int64{
		testutil.SeedTestMug(t, db, "a", "a.png", 0, 0),
		testutil.SeedTestMug(t, db, "b", "b.png", 0, 0),
		testutil.SeedTestMug(t, db, "c", "c.png", 0, 0),
	}

	votes := [][2]int64{
		{ids[0], ids[1]}, {ids[1], ids[2]}, {ids[2], ids[0]},
		{ids[0], ids[2]}, {ids[0], ids[1]}, {ids[1], ids[0]},
	}
	for _, v := range votes {
		if err := RecordVote(db, v[0], v[1]); err != nil {
			t.Fatalf("RecordVote(%d, %d) failed: %v", v[0], v[1], err)
		}
	}

	var sumWins, sumLosses int
	if err := db.QueryRow(`SELECT SUM(wins), SUM(losses) FROM mugs`).Scan(&sumWins, &sumLosses); err != nil {
		t.Fatalf("Failed to sum counters: %v", err)
	}

	voteCount := testutil.CountVotes(t, db)
	if sumWins != len(votes) || sumLosses != len(votes) || voteCount != len(votes) {
		t.Errorf("Inconsistent store: sum(wins)=%d sum(losses)=%d votes=%d, expected all %d",
			sumWins, sumLosses, voteCount, len(votes))
	}
}
