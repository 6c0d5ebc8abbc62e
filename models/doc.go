// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the shared domain types.

# Domain Types

  - Session: a titled, ordered list of items undergoing pairwise comparison
  - Comparison: one unordered item pair with an optional recorded winner
  - Progress: completed/total counts with a rounded percentage
  - ItemResult: one ranking row (wins, appearances, win rate, 1-indexed rank)
  - SessionResults: session + progress + ranking, the export payload

# Invariants

A session with item list of length n owns exactly n(n-1)/2 comparisons, one
per unordered pair, with ItemA preceding ItemB in the item list's order. A
comparison's winner, once set, is always one of its two items. Session slugs
are unique across the whole store.

Types here are plain data; all behavior lives in the store, voting, and
ranking packages.
*/
package models
