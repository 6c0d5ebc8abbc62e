// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse resolves runtime configuration.

# Precedence

	CLI flag > environment variable > .env file > default

A .env file in the working directory is loaded via godotenv before the
environment is consulted; godotenv does not override variables that are
already set, so the precedence above holds.

# Settings

  - DATABASE_URL (--db): store location. Default: file:comparely.db
  - DATABASE_TYPE (--db-type): sqlite or postgres. Default: sqlite

The sqlite backend is the durable local store a single-user install needs;
postgres exists for shared or hosted setups and uses the same schema.
*/
package cliparse
