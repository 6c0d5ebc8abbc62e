// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a session and all of its comparisons",
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

		if err := sessions.Delete(sess.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted %q.\n", sess.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
