// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/pairs"
	"github.com/danielhkuo/comparely/store"
	"github.com/danielhkuo/comparely/validate"
)

var createItemsFile string

var createCmd = &cobra.Command{
	Use:   "create <title> [item]...",
	Short: "Create a new comparison session",
	Long: `Create a session from a title and a list of items. Items come from the
command line, from --items-file (one item per line), or from stdin when
neither is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		items := args[1:]
		if len(items) == 0 {
			text, err := readItemsSource(createItemsFile)
			if err != nil {
				return err
			}
			items = validate.SplitItems(text)
		}

		if err := validate.SessionInput(title, items); err != nil {
			return err
		}

		conn, err := openDB()
		if err != nil {
			return err
		}
		defer conn.Close()

		sess, err := store.NewSessions(conn).Create(title, items)
		if err != nil {
			return err
		}

		fmt.Printf("Created session %q with %d items and %d comparisons.\n",
			sess.Title, len(sess.Items), pairs.Count(len(sess.Items)))
		fmt.Printf("Start voting with: comparely vote %s <item>\n", sess.Slug)
		return nil
	},
}

// readItemsSource returns the raw item text from a file, or stdin when no
// file is named.
func readItemsSource(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read items file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read items from stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createItemsFile, "items-file", "", "Read items from a file, one per line")
}
