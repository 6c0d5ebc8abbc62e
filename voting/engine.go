// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/danielhkuo/comparely/models"
	"github.com/danielhkuo/comparely/store"
)

// ErrInvalidWinner is returned when a submitted winner is neither item of the
// comparison being voted on.
var ErrInvalidWinner = errors.New("winner must be one of the compared items")

// Engine drives the per-session voting state machine: InProgress while at
// least one comparison is unanswered, Completed once none are. Submitting the
// final vote is the only path into Completed; undo and reset always force the
// session back to InProgress.
type Engine struct {
	db *sql.DB
}

func NewEngine(db *sql.DB) *Engine {
	return &Engine{db: db}
}

// SubmitVote records a winner for a comparison and recomputes the owning
// session's completion inside the same transaction, so a crash between the
// two steps can never leave the session inconsistent.
func (e *Engine) SubmitVote(comparisonID, winner string) error {
	now := time.Now()

	tx, err := e.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var sessionID, itemA, itemB string
	err = tx.QueryRow(`
		SELECT session_id, item_a, item_b FROM comparison WHERE id = $1
	`, comparisonID).Scan(&sessionID, &itemA, &itemB)
	if err == sql.ErrNoRows {
		return store.ErrComparisonNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query comparison: %w", err)
	}

	if winner != itemA && winner != itemB {
		return fmt.Errorf("%w: %q is not part of (%s, %s)", ErrInvalidWinner, winner, itemA, itemB)
	}

	_, err = tx.Exec(`
		UPDATE comparison SET winner = $1, updated_at = $2 WHERE id = $3
	`, winner, now.UnixNano(), comparisonID)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	var remaining int
	err = tx.QueryRow(`
		SELECT COUNT(*) FROM comparison WHERE session_id = $1 AND winner IS NULL
	`, sessionID).Scan(&remaining)
	if err != nil {
		return fmt.Errorf("failed to count unanswered comparisons: %w", err)
	}

	if remaining == 0 {
		_, err = tx.Exec(`
			UPDATE session SET is_completed = $1, updated_at = $2 WHERE id = $3
		`, true, now.UnixNano(), sessionID)
		if err != nil {
			return fmt.Errorf("failed to mark session completed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}

	slog.Info("vote recorded",
		"session_id", sessionID,
		"comparison_id", comparisonID,
		"winner", winner,
		"remaining", remaining,
	)
	return nil
}

// UndoLastVote clears the most recently answered comparison and forces the
// session back to not-completed, atomically. Undoing with nothing answered is
// a no-op, not an error.
func (e *Engine) UndoLastVote(sessionID string) error {
	now := time.Now()

	tx, err := e.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := sessionExists(tx, sessionID); err != nil {
		return err
	}

	var comparisonID string
	err = tx.QueryRow(`
		SELECT id FROM comparison
		WHERE session_id = $1 AND winner IS NOT NULL
		ORDER BY updated_at DESC, position DESC
		LIMIT 1
	`, sessionID).Scan(&comparisonID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find last answered comparison: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE comparison SET winner = NULL, updated_at = $1 WHERE id = $2
	`, now.UnixNano(), comparisonID)
	if err != nil {
		return fmt.Errorf("failed to clear vote: %w", err)
	}

	// Undo always leaves at least one unanswered comparison, so forcing the
	// flag is unconditionally correct.
	_, err = tx.Exec(`
		UPDATE session SET is_completed = $1, updated_at = $2 WHERE id = $3
	`, false, now.UnixNano(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to reopen session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit undo: %w", err)
	}

	slog.Info("vote undone", "session_id", sessionID, "comparison_id", comparisonID)
	return nil
}

// ResetVotes clears every recorded winner for the session and forces it back
// to not-completed, in one transaction.
func (e *Engine) ResetVotes(sessionID string) error {
	now := time.Now()

	tx, err := e.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := sessionExists(tx, sessionID); err != nil {
		return err
	}

	_, err = tx.Exec(`
		UPDATE comparison SET winner = NULL, updated_at = $1 WHERE session_id = $2
	`, now.UnixNano(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to reset votes: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE session SET is_completed = $1, updated_at = $2 WHERE id = $3
	`, false, now.UnixNano(), sessionID)
	if err != nil {
		return fmt.Errorf("failed to reopen session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	slog.Info("votes reset", "session_id", sessionID)
	return nil
}

// Progress reports answered/total counts and a rounded percentage for the
// session. A session with no comparisons reports 0%.
func (e *Engine) Progress(sessionID string) (models.Progress, error) {
	var exists bool
	err := e.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM session WHERE id = $1)`, sessionID).Scan(&exists)
	if err != nil {
		return models.Progress{}, fmt.Errorf("failed to query session: %w", err)
	}
	if !exists {
		return models.Progress{}, store.ErrSessionNotFound
	}

	var total, completed int
	err = e.db.QueryRow(`
		SELECT COUNT(*), COUNT(winner) FROM comparison WHERE session_id = $1
	`, sessionID).Scan(&total, &completed)
	if err != nil {
		return models.Progress{}, fmt.Errorf("failed to count comparisons: %w", err)
	}

	p := models.Progress{Completed: completed, Total: total}
	if total > 0 {
		p.Percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return p, nil
}

func sessionExists(tx *sql.Tx, sessionID string) error {
	var exists bool
	err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM session WHERE id = $1)`, sessionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query session: %w", err)
	}
	if !exists {
		return store.ErrSessionNotFound
	}
	return nil
}
