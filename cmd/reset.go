// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/store"
	"github.com/danielhkuo/comparely/voting"
)

var resetCmd = &cobra.Command{
	Use:   "reset <slug>",
	Short: "Clear every vote and start the session over",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openDB()
		if err != nil {
			return err
		}
		defer conn.Close()

		sess, err := sessionBySlug(store.NewSessions(conn), args[0])
		if err != nil {
			return err
		}

		if err := voting.NewEngine(conn).ResetVotes(sess.ID); err != nil {
			return err
		}
		fmt.Printf("All votes cleared for %q.\n", sess.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
