// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/store"
	"github.com/danielhkuo/comparely/voting"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a session's items and comparison states",
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

		progress, err := voting.NewEngine(conn).Progress(sess.ID)
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(sess.Title))
		fmt.Printf("%s · created %s\n", slugStyle.Render(sess.Slug), humanize.Time(sess.CreatedAt))
		if sess.IsCompleted {
			fmt.Println(doneStyle.Render("✓ Completed"))
		}
		fmt.Printf("Progress: %d/%d (%d%%)\n\n", progress.Completed, progress.Total, progress.Percentage)

		fmt.Println(titleStyle.Render("Items"))
		for _, item := range sess.Items {
			fmt.Printf("  • %s\n", item)
		}
		fmt.Println()

		comparisons, err := store.NewComparisons(conn).ListBySession(sess.ID)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Comparisons"))
		for _, cmp := range comparisons {
			if cmp.Answered() {
				fmt.Printf("  %s  %s vs %s\n", doneStyle.Render("✓ "+*cmp.Winner), cmp.ItemA, cmp.ItemB)
			} else {
				fmt.Printf("  %s  %s vs %s\n", dateStyle.Render("· pending"), cmp.ItemA, cmp.ItemB)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
