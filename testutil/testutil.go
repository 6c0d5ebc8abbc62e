// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/comparely/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// An in-memory database lives and dies with its connection.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// CreateTestSession inserts a session row directly and returns its id.
func CreateTestSession(t *testing.T, conn *sql.DB, title, slug string, items []string) string {
	t.Helper()

	id := uuid.NewString()
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("Failed to encode items: %v", err)
	}

	now := time.Now().UnixNano()
	_, err = conn.Exec(`
		INSERT INTO session (id, title, slug, items, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, title, slug, string(itemsJSON), false, now, now)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return id
}

// AddTestComparison inserts a comparison row directly and returns its id.
// winner may be nil for an unanswered comparison.
func AddTestComparison(t *testing.T, conn *sql.DB, sessionID string, position int, itemA, itemB string, winner *string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UnixNano()
	_, err := conn.Exec(`
		INSERT INTO comparison (id, session_id, position, item_a, item_b, winner, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, id, sessionID, position, itemA, itemB, winner, now, now)
	if err != nil {
		t.Fatalf("Failed to create test comparison: %v", err)
	}

	return id
}

// TouchComparison sets a comparison's updated_at to a fixed instant, which
// lets tests pin the "most recently answered" ordering.
func TouchComparison(t *testing.T, conn *sql.DB, comparisonID string, at time.Time) {
	t.Helper()

	_, err := conn.Exec(`UPDATE comparison SET updated_at = $1 WHERE id = $2`, at.UnixNano(), comparisonID)
	if err != nil {
		t.Fatalf("Failed to touch comparison: %v", err)
	}
}

// StringPtr returns a pointer to s; handy for winner fields in table tests.
func StringPtr(s string) *string {
	return &s
}
