// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/comparely/models"
	"github.com/danielhkuo/comparely/slug"
	"github.com/google/uuid"
)

// Sessions owns session records and their lifecycle. Every multi-record
// mutation (create, item-list update, delete) runs in a single transaction so
// partial application is never observable.
type Sessions struct {
	db *sql.DB
}

func NewSessions(db *sql.DB) *Sessions {
	return &Sessions{db: db}
}

const sessionColumns = "id, title, slug, items, is_completed, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (models.Session, error) {
	var s models.Session
	var itemsJSON string
	var createdAt, updatedAt int64

	if err := row.Scan(&s.ID, &s.Title, &s.Slug, &itemsJSON, &s.IsCompleted, &createdAt, &updatedAt); err != nil {
		return models.Session{}, err
	}
	if err := json.Unmarshal([]byte(itemsJSON), &s.Items); err != nil {
		return models.Session{}, fmt.Errorf("failed to decode item list: %w", err)
	}
	s.CreatedAt = time.Unix(0, createdAt)
	s.UpdatedAt = time.Unix(0, updatedAt)
	return s, nil
}

// allocateSlug finds the first free slug for title, appending -1, -2, … until
// no collision remains. excludeID skips the session being edited so an
// unchanged title keeps its slug. The check-then-act is safe because the
// caller holds the transaction that inserts the slug; the UNIQUE constraint
// on session.slug is the backstop.
func allocateSlug(tx *sql.Tx, title, excludeID string) (string, error) {
	base := slug.Make(title)
	candidate := base

	for counter := 1; ; counter++ {
		var existingID string
		err := tx.QueryRow(`SELECT id FROM session WHERE slug = $1`, candidate).Scan(&existingID)
		if err == sql.ErrNoRows {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if excludeID != "" && existingID == excludeID {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// Create persists a new session and populates its comparisons in one
// transaction. Title and items are assumed pre-validated at the input
// boundary; the pair generator still rejects lists shorter than two.
func (s *Sessions) Create(title string, items []string) (models.Session, error) {
	id := uuid.NewString()
	now := time.Now()

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to encode item list: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sessionSlug, err := allocateSlug(tx, title, "")
	if err != nil {
		return models.Session{}, err
	}

	_, err = tx.Exec(`
		INSERT INTO session (id, title, slug, items, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, title, sessionSlug, string(itemsJSON), false, now.UnixNano(), now.UnixNano())
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to insert session: %w", err)
	}

	if err := insertComparisons(tx, id, items, now); err != nil {
		return models.Session{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Session{}, fmt.Errorf("failed to commit session: %w", err)
	}

	slog.Info("session created", "session_id", id, "slug", sessionSlug, "items", len(items))

	return models.Session{
		ID:          id,
		Title:       title,
		Slug:        sessionSlug,
		Items:       items,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *Sessions) GetByID(id string) (models.Session, error) {
	sess, err := scanSession(s.db.QueryRow(`
		SELECT `+sessionColumns+` FROM session WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to query session: %w", err)
	}
	return sess, nil
}

func (s *Sessions) GetBySlug(sessionSlug string) (models.Session, error) {
	sess, err := scanSession(s.db.QueryRow(`
		SELECT `+sessionColumns+` FROM session WHERE slug = $1
	`, sessionSlug))
	if err == sql.ErrNoRows {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to query session: %w", err)
	}
	return sess, nil
}

// List returns all sessions, most recently touched first.
func (s *Sessions) List() ([]models.Session, error) {
	rows, err := s.db.Query(`
		SELECT ` + sessionColumns + ` FROM session ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// UpdateParams carries a partial session update. A nil Title leaves the title
// and slug alone; an empty Items slice leaves the comparisons alone.
type UpdateParams struct {
	Title *string
	Items []string
}

// Update applies a partial update. A new title reallocates the slug
// (excluding this session from the collision check). A new item list deletes
// every existing comparison, regenerates them from the new items, and forces
// the session back to not-completed - all inside the same transaction.
func (s *Sessions) Update(id string, p UpdateParams) error {
	now := time.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM session WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query session: %w", err)
	}
	if !exists {
		return ErrSessionNotFound
	}

	if p.Title != nil {
		newSlug, err := allocateSlug(tx, *p.Title, id)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			UPDATE session SET title = $1, slug = $2, updated_at = $3 WHERE id = $4
		`, *p.Title, newSlug, now.UnixNano(), id)
		if err != nil {
			return fmt.Errorf("failed to update title: %w", err)
		}
	} else {
		_, err = tx.Exec(`UPDATE session SET updated_at = $1 WHERE id = $2`, now.UnixNano(), id)
		if err != nil {
			return fmt.Errorf("failed to touch session: %w", err)
		}
	}

	if len(p.Items) > 0 {
		itemsJSON, err := json.Marshal(p.Items)
		if err != nil {
			return fmt.Errorf("failed to encode item list: %w", err)
		}

		_, err = tx.Exec(`
			UPDATE session SET items = $1, is_completed = $2, updated_at = $3 WHERE id = $4
		`, string(itemsJSON), false, now.UnixNano(), id)
		if err != nil {
			return fmt.Errorf("failed to update item list: %w", err)
		}

		_, err = tx.Exec(`DELETE FROM comparison WHERE session_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete stale comparisons: %w", err)
		}

		if err := insertComparisons(tx, id, p.Items, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update: %w", err)
	}

	slog.Info("session updated",
		"session_id", id,
		"title_changed", p.Title != nil,
		"items_changed", len(p.Items) > 0,
	)
	return nil
}

// Delete removes the session and all its comparisons in one transaction.
func (s *Sessions) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM comparison WHERE session_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comparisons: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM session WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	slog.Info("session deleted", "session_id", id)
	return nil
}

// Duplicate creates an independent copy of a session: same items, title
// suffixed with " (Copy)", fresh slug, and fresh unanswered comparisons.
func (s *Sessions) Duplicate(id string) (models.Session, error) {
	src, err := s.GetByID(id)
	if err != nil {
		return models.Session{}, err
	}

	items := make([]string, len(src.Items))
	copy(items, src.Items)

	return s.Create(src.Title+" (Copy)", items)
}
