// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/mug-tournament/cliparse"
	"github.com/danielhkuo/mug-tournament/db"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// SQLite is the same engine the server uses outside production, so the
// tests exercise the real local store rather than a mock.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mug-tournament-test.db")
	conn, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(10000)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// SQLite allows a single writer at a time; one pooled connection keeps
	// concurrent test traffic from tripping busy errors.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, cliparse.DBTypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		Env:          "test",
		DatabaseType: cliparse.DBTypeSQLite,
		DatabaseURL:  "mug-tournament-test.db",
	}
}

// SeedTestMug inserts one mug with the given counters and returns its ID
func SeedTestMug(t *testing.T, conn *sql.DB, name, filename string, wins, losses int) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO mugs (name, filename, wins, losses)
		VALUES ($1, $2, $3, $4)
	`, name, filename, wins, losses)
	if err != nil {
		t.Fatalf("Failed to seed test mug %q: %v", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get seeded mug ID: %v", err)
	}

	return id
}

// CountVotes returns the total number of vote records
func CountVotes(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}

	return count
}

// GetMugCounters reads a mug's wins and losses back from the database
func GetMugCounters(t *testing.T, conn *sql.DB, id int64) (wins, losses int) {
	t.Helper()

	err := conn.QueryRow(`SELECT wins, losses FROM mugs WHERE id = $1`, id).Scan(&wins, &losses)
	if err != nil {
		t.Fatalf("Failed to read counters for mug %d: %v", id, err)
	}

	return wins, losses
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
