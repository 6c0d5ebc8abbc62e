// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/cliparse"
	"github.com/danielhkuo/comparely/db"
	"github.com/danielhkuo/comparely/models"
	"github.com/danielhkuo/comparely/store"
)

var (
	databaseURL  string
	databaseType string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "comparely",
	Short: "Rank anything through pairwise comparisons",
	Long: `Comparely turns a list of items into a ranking by asking you to pick a
winner from every unique pair, one comparison at a time.

Quick start:
  comparely create "Movie night" Alien Heat Rocky   # new session
  comparely vote movie-night Alien                  # answer the next pair
  comparely results movie-night                     # current standings

Sessions persist in a local sqlite file by default; set --db-type postgres
and --db to use a PostgreSQL server instead.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "db", "", "Database URL (default "+cliparse.DefaultDatabaseURL+")")
	rootCmd.PersistentFlags().StringVar(&databaseType, "db-type", "", "Database type: sqlite or postgres (default sqlite)")
}

// openDB resolves configuration, connects, and makes sure the schema exists.
// The caller owns the handle.
func openDB() (*sql.DB, error) {
	cfg, err := cliparse.Resolve(databaseURL, databaseType)
	if err != nil {
		return nil, err
	}
	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// sessionBySlug looks a session up by its slug, the identifier every
// subcommand takes on the command line.
func sessionBySlug(sessions *store.Sessions, slug string) (models.Session, error) {
	sess, err := sessions.GetBySlug(slug)
	if err == store.ErrSessionNotFound {
		return models.Session{}, fmt.Errorf("no session with slug %q (try 'comparely list')", slug)
	}
	return sess, err
}
