// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pairs generates the full set of unordered comparison pairs for an
ordered item list.

For items [A, B, C] the sequence is (A,B), (A,C), (B,C): all i < j index
pairs, outer index ascending, inner index ascending. No randomization; the
same input always yields the same sequence, which is what lets a session's
comparisons be regenerated deterministically after an item-list edit.
*/
package pairs
