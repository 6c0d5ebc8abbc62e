// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

// Not-found conditions surfaced to callers. The presentation layer maps these
// to a user-facing "not found" state; they are never retried automatically.
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrComparisonNotFound = errors.New("comparison not found")
)
