// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/danielhkuo/comparely/models"
	"github.com/danielhkuo/comparely/store"
)

// Compute tallies wins and appearances per item from the session's answered
// comparisons and returns the items ranked by win rate. Ties on win rate break
// by absolute wins; further ties keep the session's original item order, so
// repeated calls on the same data always return the same ranking.
func Compute(db *sql.DB, sessionID string) ([]models.ItemResult, error) {
	var itemsJSON string
	err := db.QueryRow(`SELECT items FROM session WHERE id = $1`, sessionID).Scan(&itemsJSON)
	if err == sql.ErrNoRows {
		return nil, store.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var items []string
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return nil, fmt.Errorf("failed to decode session items: %w", err)
	}

	rows, err := db.Query(`
		SELECT item_a, item_b, winner FROM comparison WHERE session_id = $1
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparisons: %w", err)
	}
	defer rows.Close()

	wins := make(map[string]int, len(items))
	appearances := make(map[string]int, len(items))
	for rows.Next() {
		var itemA, itemB string
		var winner sql.NullString
		if err := rows.Scan(&itemA, &itemB, &winner); err != nil {
			return nil, fmt.Errorf("failed to scan comparison: %w", err)
		}
		appearances[itemA]++
		appearances[itemB]++
		if winner.Valid {
			wins[winner.String]++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comparisons: %w", err)
	}

	results := make([]models.ItemResult, 0, len(items))
	for _, item := range items {
		r := models.ItemResult{
			Item:        item,
			Wins:        wins[item],
			Appearances: appearances[item],
		}
		if r.Appearances > 0 {
			r.WinRate = int(math.Round(float64(r.Wins) / float64(r.Appearances) * 100))
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].WinRate != results[j].WinRate {
			return results[i].WinRate > results[j].WinRate
		}
		return results[i].Wins > results[j].Wins
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}

// Results assembles the full report for a session: the session record, its
// progress, and the ranked items.
func Results(db *sql.DB, sessions *store.Sessions, sessionID string) (*models.SessionResults, error) {
	sess, err := sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}

	var total, completed int
	err = db.QueryRow(`
		SELECT COUNT(*), COUNT(winner) FROM comparison WHERE session_id = $1
	`, sessionID).Scan(&total, &completed)
	if err != nil {
		return nil, fmt.Errorf("failed to count comparisons: %w", err)
	}
	progress := models.Progress{Completed: completed, Total: total}
	if total > 0 {
		progress.Percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	rankings, err := Compute(db, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.SessionResults{
		Session:  sess,
		Progress: progress,
		Rankings: rankings,
	}, nil
}
