// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairs

import "errors"

// ErrTooFewItems is returned when fewer than two items are supplied.
var ErrTooFewItems = errors.New("at least 2 items are required to generate pairs")

// Pair is a single unordered comparison between two items. A always holds the
// item that comes earlier in the source list.
type Pair struct {
	A string
	B string
}

// Generate enumerates every unique unordered pair of the given items: for n
// items it returns exactly n(n-1)/2 pairs, outer index ascending then inner
// index ascending, so the sequence is deterministic for a fixed input.
func Generate(items []string) ([]Pair, error) {
	if len(items) < 2 {
		return nil, ErrTooFewItems
	}

	out := make([]Pair, 0, Count(len(items)))
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			out = append(out, Pair{A: items[i], B: items[j]})
		}
	}
	return out, nil
}

// Count returns the number of pairs Generate produces for n items.
func Count(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
