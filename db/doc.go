// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Backends

Open selects a driver from the resolved configuration:

  - sqlite (modernc.org/sqlite): the default durable local store
  - postgres (lib/pq): for shared or hosted installs

The DDL is written to run unmodified on both, so the statements stick to
TEXT/BIGINT/BOOLEAN columns and IF NOT EXISTS guards. CreateSchema is
idempotent and runs on every start.

# Tables

  - session: title, unique slug, JSON-encoded item list, completion flag
  - comparison: one row per unordered item pair, nullable winner

	session 1──* comparison

The comparison foreign key cascades on delete; the stores still delete both
sides explicitly inside one transaction so that the cascade is a backstop, not
the mechanism.

# Timestamps

created_at/updated_at are unix nanoseconds in BIGINT columns. Undo picks the
most recently answered comparison by ordering on updated_at, and integer
ordering is the one representation that compares identically under both
backends.
*/
package db
