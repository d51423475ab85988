// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/mug-tournament/models"
	"github.com/danielhkuo/mug-tournament/testutil"
)

func TestGetBattle(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewBattleHandler(db, cfg)

	testutil.SeedTestMug(t, db, "acadia", "acadia.png", 2, 1)
	testutil.SeedTestMug(t, db, "aqua", "aqua.png", 0, 0)
	testutil.SeedTestMug(t, db, "cat", "cat.png", 5, 5)

	req := httptest.NewRequest("GET", "/battle", nil)
	w := httptest.NewRecorder()

	handler.GetBattle(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.BattleResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Mug1.ID == resp.Mug2.ID {
		t.Error("Battle returned the same mug twice")
	}
	if resp.Mug1.Name == "" || resp.Mug2.Name == "" {
		t.Errorf("Battle mugs missing names: %+v", resp)
	}
}

func TestGetBattle_InsufficientCatalog(t *testing.T) {
	tests := []struct {
		name string
		seed int
	}{
		{"empty catalog", 0},
		{"single mug", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)

			cfg := testutil.GetTestConfig()
			handler := NewBattleHandler(db, cfg)

			if tc.seed == 1 {
				testutil.SeedTestMug(t, db, "alone", "alone.png", 0, 0)
			}

			req := httptest.NewRequest("GET", "/battle", nil)
			w := httptest.NewRecorder()

			handler.GetBattle(w, req)

			// An undersized catalog is a deployment fault, not a bad request
			testutil.AssertStatus(t, w, http.StatusInternalServerError)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != "Failed to get battle pair" {
				t.Errorf("Unexpected error message: %q", resp.Error)
			}
		})
	}
}
