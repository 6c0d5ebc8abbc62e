// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/store"
	"github.com/danielhkuo/comparely/voting"
)

var undoCmd = &cobra.Command{
	Use:   "undo <slug>",
	Short: "Take back the most recent vote",
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

		engine := voting.NewEngine(conn)
		if err := engine.UndoLastVote(sess.ID); err != nil {
			return err
		}

		progress, err := engine.Progress(sess.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Undone. %d/%d answered.\n", progress.Completed, progress.Total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
