// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ranking computes win-rate standings for a session.

Every item appears in n-1 comparisons, so appearances is the same for all
items of a session; it is still tallied per item rather than derived, which
keeps the math honest if a session's comparisons are ever partially present.
Win rate is wins/appearances as a rounded percentage, 0 when an item has no
appearances.

Ordering is win rate descending, then wins descending, then the session's
original item order. The sort is stable, so rankings are deterministic for a
given set of votes.
*/
package ranking
