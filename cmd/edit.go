// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/store"
	"github.com/danielhkuo/comparely/validate"
)

var (
	editTitle     string
	editItemsFile string
)

var editCmd = &cobra.Command{
	Use:   "edit <slug>",
	Short: "Change a session's title or items",
	Long: `Update a session in place. A new title may change the session's slug.
Replacing the items regenerates every comparison and discards all votes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if editTitle == "" && editItemsFile == "" {
			return fmt.Errorf("nothing to change: pass --title and/or --items-file")
		}

		var params store.UpdateParams
		if editTitle != "" {
			if err := validate.Title(editTitle); err != nil {
				return err
			}
			params.Title = &editTitle
		}
		if editItemsFile != "" {
			data, err := os.ReadFile(editItemsFile)
			if err != nil {
				return fmt.Errorf("failed to read items file: %w", err)
			}
			items := validate.SplitItems(string(data))
			if err := validate.Items(items); err != nil {
				return err
			}
			params.Items = items
		}

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

		if err := sessions.Update(sess.ID, params); err != nil {
			return err
		}

		updated, err := sessions.GetByID(sess.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %q.\n", updated.Title)
		if updated.Slug != sess.Slug {
			fmt.Printf("New slug: %s\n", updated.Slug)
		}
		if params.Items != nil {
			fmt.Println("Items replaced; all comparisons regenerated.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New session title")
	editCmd.Flags().StringVar(&editItemsFile, "items-file", "", "Replace items from a file, one per line")
}
