// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists sessions and their pairwise comparisons.

# Components

  - Sessions: session lifecycle (create, read, list, partial update, delete,
    duplicate) plus slug allocation
  - Comparisons: comparison records (populate, list, next unanswered, set and
    clear winners, most recently answered, unanswered count)

Both components hold a *sql.DB and are constructed once at startup; there is
no package-level state.

# Transactions

Every mutation that touches more than one record runs inside a single
transaction with a deferred rollback:

  - session creation: slug check + session insert + comparison bulk-insert
  - item-list update: field update + comparison delete + regeneration +
    completion reset
  - session deletion: comparisons + session

Slug allocation is check-then-act and is only safe because it happens inside
the transaction that consumes the slug. The UNIQUE constraint on session.slug
turns a lost race into a failed commit instead of silent duplication.

# Errors

ErrSessionNotFound and ErrComparisonNotFound are the distinguishable
not-found signals; storage failures are wrapped with context and propagated
unmodified otherwise.
*/
package store
