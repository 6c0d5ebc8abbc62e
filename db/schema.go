// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are stored as unix nanoseconds (BIGINT) so that ordering by
// updated_at behaves identically under sqlite and postgres; the item list is
// stored as a JSON array in the session row.
const schema = `
-- Voting sessions
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    items TEXT NOT NULL,
    is_completed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_updated_at ON session(updated_at);

-- Pairwise comparisons, one row per unordered item pair of a session.
-- position is the pair's index in the generation sequence.
CREATE TABLE IF NOT EXISTS comparison (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    item_a TEXT NOT NULL,
    item_b TEXT NOT NULL,
    winner TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    UNIQUE (session_id, position)
);

CREATE INDEX IF NOT EXISTS idx_comparison_session_id ON comparison(session_id);
CREATE INDEX IF NOT EXISTS idx_comparison_winner ON comparison(session_id, winner);
`
