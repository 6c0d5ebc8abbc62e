// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slug

import "strings"

// Fallback is used when a title normalizes to nothing (e.g. all punctuation).
const Fallback = "session"

// Make normalizes a title into a URL-safe lowercase token. Runs of characters
// outside [a-z0-9] collapse to a single hyphen; leading and trailing hyphens
// are dropped. The mapping is lossy: "Best Pizza!!" and "best pizza" both
// normalize to "best-pizza". Uniqueness is the session store's job, not ours.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	if b.Len() == 0 {
		return Fallback
	}
	return b.String()
}
