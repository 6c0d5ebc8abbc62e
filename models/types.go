// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Database type constants
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Domain types

// Session is a named collection of items undergoing pairwise comparison.
// Slug is unique across all sessions. IsCompleted is true only while every
// comparison belonging to the session has a recorded winner.
type Session struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Slug        string    `json:"slug" yaml:"slug"`
	Items       []string  `json:"items" yaml:"items"`
	IsCompleted bool      `json:"is_completed" yaml:"is_completed"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// Comparison is one unordered pair of a session's items. Winner is nil while
// the pair is unanswered; once answered it equals ItemA or ItemB. Position is
// the pair's index in the generation sequence and gives comparisons a stable
// storage order.
type Comparison struct {
	ID        string    `json:"id" yaml:"id"`
	SessionID string    `json:"session_id" yaml:"session_id"`
	Position  int       `json:"position" yaml:"position"`
	ItemA     string    `json:"item_a" yaml:"item_a"`
	ItemB     string    `json:"item_b" yaml:"item_b"`
	Winner    *string   `json:"winner" yaml:"winner"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Answered reports whether a winner has been recorded for the comparison.
func (c Comparison) Answered() bool {
	return c.Winner != nil
}

// Progress summarizes how far a session's voting has gone. Percentage is
// rounded to the nearest integer and is 0 when the session has no comparisons.
type Progress struct {
	Completed  int `json:"completed" yaml:"completed"`
	Total      int `json:"total" yaml:"total"`
	Percentage int `json:"percentage" yaml:"percentage"`
}

// ItemResult is one row of a session's ranking. Rank is 1-indexed and assigned
// after sorting, so medal assignment follows position rather than score.
type ItemResult struct {
	Rank        int    `json:"rank" yaml:"rank"`
	Item        string `json:"item" yaml:"item"`
	Wins        int    `json:"wins" yaml:"wins"`
	Appearances int    `json:"appearances" yaml:"appearances"`
	WinRate     int    `json:"win_rate" yaml:"win_rate"`
}

// SessionResults bundles a session with its progress and computed ranking.
// This is the shape handed to exporters and the results command.
type SessionResults struct {
	Session  Session      `json:"session" yaml:"session"`
	Progress Progress     `json:"progress" yaml:"progress"`
	Rankings []ItemResult `json:"rankings" yaml:"rankings"`
}
