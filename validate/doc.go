// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package validate is the input boundary: title and item-list checks run here,
// before anything reaches the store. Titles are 3-100 characters; item lists
// need at least two unique, non-empty entries.
package validate
