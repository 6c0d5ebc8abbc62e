// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/store"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <slug>",
	Short: "Copy a session with fresh, unanswered comparisons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openDB()
		if err != nil {
			return err
		}
		defer conn.Close()

		sessions := store.NewSessions(conn)
		sess, err := sessionBySlug(sessions, args[0])
		if err != nil {
			return err
		}

		dup, err := sessions.Duplicate(sess.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Created %q (%s).\n", dup.Title, dup.Slug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}
