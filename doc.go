// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the comparely CLI.

Comparely ranks a list of items through exhaustive pairwise comparison: a
session holds a title and at least two items, every unique pair becomes one
comparison, and answering all of them completes the session and yields a
win-rate ranking.

# Usage

	comparely create "Movie night" Alien Heat Rocky
	comparely vote movie-night a
	comparely results movie-night --format json

# Configuration

Settings resolve from flags, then environment variables, then a .env file:

  - DATABASE_URL (--db): database location (default: file:comparely.db)
  - DATABASE_TYPE (--db-type): sqlite or postgres (default: sqlite)

# Architecture

The CLI is a thin layer over a library of components:

  - pairs: unique pair generation
  - slug: URL-safe session identifiers
  - store: session and comparison persistence over database/sql
  - voting: vote submission, undo, reset, and completion tracking
  - ranking: win-rate standings
  - export: JSON, YAML, and Markdown result reports
  - validate: input boundary checks
  - models: shared domain types
  - db: connection and schema management
  - cliparse: configuration parsing
  - cmd: cobra subcommands

See package documentation for each component.
*/
package main
