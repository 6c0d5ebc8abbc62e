// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/models"
	"github.com/danielhkuo/comparely/store"
	"github.com/danielhkuo/comparely/voting"
)

var voteCmd = &cobra.Command{
	Use:   "vote <slug> <item|a|b>",
	Short: "Record the winner of the next unanswered comparison",
	Long: `Record a winner for the session's next unanswered comparison. The winner
may be named exactly, or as 'a'/'b' matching the order printed by 'next'.`,
	Args: cobra.ExactArgs(2),
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
			return fmt.Errorf("session %q has no unanswered comparisons", sess.Slug)
		}

		winner, err := resolveWinner(*cmp, args[1])
		if err != nil {
			return err
		}

		engine := voting.NewEngine(conn)
		if err := engine.SubmitVote(cmp.ID, winner); err != nil {
			return err
		}

		progress, err := engine.Progress(sess.ID)
		if err != nil {
			return err
		}

		fmt.Printf("%s beats %s (%d/%d answered)\n",
			winner, loser(*cmp, winner), progress.Completed, progress.Total)
		if progress.Completed == progress.Total {
			fmt.Println(doneStyle.Render("Session complete — see 'comparely results " + sess.Slug + "'"))
		}
		return nil
	},
}

// resolveWinner maps the user's choice onto one of the comparison's items:
// an exact item name, or the 'a'/'b' shortcut from the 'next' output.
func resolveWinner(cmp models.Comparison, choice string) (string, error) {
	switch {
	case choice == cmp.ItemA || choice == cmp.ItemB:
		return choice, nil
	case strings.EqualFold(choice, "a"):
		return cmp.ItemA, nil
	case strings.EqualFold(choice, "b"):
		return cmp.ItemB, nil
	default:
		return "", fmt.Errorf("%q is not part of this comparison (%s vs %s)", choice, cmp.ItemA, cmp.ItemB)
	}
}

func loser(cmp models.Comparison, winner string) string {
	if winner == cmp.ItemA {
		return cmp.ItemB
	}
	return cmp.ItemA
}

func init() {
	rootCmd.AddCommand(voteCmd)
}
