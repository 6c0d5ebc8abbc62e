// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/store"
	"github.com/danielhkuo/comparely/voting"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	slugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions, most recently touched first",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openDB()
		if err != nil {
			return err
		}
		defer conn.Close()

		sessions, err := store.NewSessions(conn).List()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println(headerStyle.Render("No sessions yet — try 'comparely create'"))
			return nil
		}

		engine := voting.NewEngine(conn)

		fmt.Println(headerStyle.Render(fmt.Sprintf("%d session(s)", len(sessions))))
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Slug")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Progress")+"\t"+titleStyle.Render("Updated")+"\t")
		_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

		for _, sess := range sessions {
			progress, err := engine.Progress(sess.ID)
			if err != nil {
				return err
			}

			status := fmt.Sprintf("%d/%d (%d%%)", progress.Completed, progress.Total, progress.Percentage)
			if sess.IsCompleted {
				status = doneStyle.Render("✓ " + status)
			}

			title := sess.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}

			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
				slugStyle.Render(sess.Slug),
				title,
				status,
				dateStyle.Render(humanize.Time(sess.UpdatedAt)),
			)
		}

		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
