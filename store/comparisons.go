// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/comparely/models"
	"github.com/danielhkuo/comparely/pairs"
	"github.com/google/uuid"
)

// Comparisons owns comparison records keyed to their session.
type Comparisons struct {
	db *sql.DB
}

func NewComparisons(db *sql.DB) *Comparisons {
	return &Comparisons{db: db}
}

const comparisonColumns = "id, session_id, position, item_a, item_b, winner, created_at, updated_at"

func scanComparison(row rowScanner) (models.Comparison, error) {
	var c models.Comparison
	var winner sql.NullString
	var createdAt, updatedAt int64

	err := row.Scan(&c.ID, &c.SessionID, &c.Position, &c.ItemA, &c.ItemB, &winner, &createdAt, &updatedAt)
	if err != nil {
		return models.Comparison{}, err
	}
	if winner.Valid {
		w := winner.String
		c.Winner = &w
	}
	c.CreatedAt = time.Unix(0, createdAt)
	c.UpdatedAt = time.Unix(0, updatedAt)
	return c, nil
}

// insertComparisons bulk-creates one unanswered comparison per generated
// pair, positions following the generation sequence. Shared by session
// creation, item-list updates, and Populate.
func insertComparisons(tx *sql.Tx, sessionID string, items []string, now time.Time) error {
	generated, err := pairs.Generate(items)
	if err != nil {
		return fmt.Errorf("failed to generate pairs: %w", err)
	}

	for i, p := range generated {
		_, err := tx.Exec(`
			INSERT INTO comparison (id, session_id, position, item_a, item_b, winner, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, NULL, $6, $7)
		`, uuid.NewString(), sessionID, i, p.A, p.B, now.UnixNano(), now.UnixNano())
		if err != nil {
			return fmt.Errorf("failed to insert comparison %d: %w", i, err)
		}
	}
	return nil
}

// Populate bulk-creates the comparisons for a session's items, all winners
// null, in one transaction.
func (c *Comparisons) Populate(sessionID string, items []string) error {
	now := time.Now()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertComparisons(tx, sessionID, items, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comparisons: %w", err)
	}
	return nil
}

// ListBySession returns a session's comparisons in storage (position) order.
func (c *Comparisons) ListBySession(sessionID string) ([]models.Comparison, error) {
	rows, err := c.db.Query(`
		SELECT `+comparisonColumns+` FROM comparison
		WHERE session_id = $1
		ORDER BY position
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparisons: %w", err)
	}
	defer rows.Close()

	comparisons := []models.Comparison{}
	for rows.Next() {
		cmp, err := scanComparison(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comparison: %w", err)
		}
		comparisons = append(comparisons, cmp)
	}
	return comparisons, rows.Err()
}

// Get returns a single comparison by id.
func (c *Comparisons) Get(id string) (models.Comparison, error) {
	cmp, err := scanComparison(c.db.QueryRow(`
		SELECT `+comparisonColumns+` FROM comparison WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return models.Comparison{}, ErrComparisonNotFound
	}
	if err != nil {
		return models.Comparison{}, fmt.Errorf("failed to query comparison: %w", err)
	}
	return cmp, nil
}

// Next returns a remaining unanswered comparison for the session, or nil when
// none remain. The lowest position is picked, which makes the order stable,
// but callers should only rely on "some unanswered comparison".
func (c *Comparisons) Next(sessionID string) (*models.Comparison, error) {
	cmp, err := scanComparison(c.db.QueryRow(`
		SELECT `+comparisonColumns+` FROM comparison
		WHERE session_id = $1 AND winner IS NULL
		ORDER BY position
		LIMIT 1
	`, sessionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query next comparison: %w", err)
	}
	return &cmp, nil
}

// SetWinner records a winner and refreshes updated_at. The winner value is
// not checked against the pair here; that is the voting engine's job.
func (c *Comparisons) SetWinner(id, winner string) error {
	res, err := c.db.Exec(`
		UPDATE comparison SET winner = $1, updated_at = $2 WHERE id = $3
	`, winner, time.Now().UnixNano(), id)
	if err != nil {
		return fmt.Errorf("failed to set winner: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrComparisonNotFound
	}
	return nil
}

// ClearWinner resets a comparison to unanswered and refreshes updated_at.
func (c *Comparisons) ClearWinner(id string) error {
	res, err := c.db.Exec(`
		UPDATE comparison SET winner = NULL, updated_at = $1 WHERE id = $2
	`, time.Now().UnixNano(), id)
	if err != nil {
		return fmt.Errorf("failed to clear winner: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrComparisonNotFound
	}
	return nil
}

// MostRecentlyAnswered returns the answered comparison with the latest
// updated_at, or nil when the session has no answered comparisons. Ties break
// by highest position, a consistent storage order.
func (c *Comparisons) MostRecentlyAnswered(sessionID string) (*models.Comparison, error) {
	cmp, err := scanComparison(c.db.QueryRow(`
		SELECT `+comparisonColumns+` FROM comparison
		WHERE session_id = $1 AND winner IS NOT NULL
		ORDER BY updated_at DESC, position DESC
		LIMIT 1
	`, sessionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query answered comparisons: %w", err)
	}
	return &cmp, nil
}

// CountUnanswered returns how many of a session's comparisons still lack a
// winner.
func (c *Comparisons) CountUnanswered(sessionID string) (int, error) {
	var count int
	err := c.db.QueryRow(`
		SELECT COUNT(*) FROM comparison WHERE session_id = $1 AND winner IS NULL
	`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unanswered comparisons: %w", err)
	}
	return count, nil
}
