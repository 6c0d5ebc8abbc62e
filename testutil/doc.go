// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package testutil provides shared test fixtures: an in-memory sqlite database
// with the full schema, and raw-SQL seed helpers that bypass the store so
// store tests don't depend on the code under test.
package testutil
