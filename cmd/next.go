// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/store"
)

var nextCmd = &cobra.Command{
	Use:   "next <slug>",
	Short: "Show the next unanswered comparison",
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

		cmp, err := store.NewComparisons(conn).Next(sess.ID)
		if err != nil {
			return err
		}
		if cmp == nil {
			fmt.Println(doneStyle.Render("All comparisons answered — see 'comparely results " + sess.Slug + "'"))
			return nil
		}

		fmt.Println(headerStyle.Render("Which do you prefer?"))
		fmt.Printf("  (a) %s\n", cmp.ItemA)
		fmt.Printf("  (b) %s\n", cmp.ItemB)
		fmt.Printf("\nVote with: comparely vote %s <item|a|b>\n", sess.Slug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
