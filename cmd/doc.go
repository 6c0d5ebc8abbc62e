// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cmd wires the comparely subcommands. Each command opens the
// configured database, resolves the session by slug, and delegates to the
// store, voting, ranking, and export packages; no domain logic lives here.
package cmd
