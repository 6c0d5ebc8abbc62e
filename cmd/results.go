// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/comparely/export"
	"github.com/danielhkuo/comparely/models"
	"github.com/danielhkuo/comparely/ranking"
	"github.com/danielhkuo/comparely/store"
)

var (
	resultsFormat string
	resultsOutput string
)

var resultsCmd = &cobra.Command{
	Use:   "results <slug>",
	Short: "Show the session's current standings",
	Long: `Show the win-rate ranking for a session. The default table renders to the
terminal; --format json, yaml, or markdown produce machine-readable output,
and -o writes it to a file instead of stdout.`,
	Args: cobra.ExactArgs(1),
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

		report, err := ranking.Results(conn, sessions, sess.ID)
		if err != nil {
			return err
		}

		if resultsFormat == "table" {
			if resultsOutput != "" {
				return fmt.Errorf("-o requires a machine-readable --format (json, yaml, md)")
			}
			renderTable(report)
			return nil
		}

		exporter, err := export.NewExporter(resultsFormat)
		if err != nil {
			return err
		}

		out := os.Stdout
		if resultsOutput != "" {
			f, err := os.Create(resultsOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		if err := exporter.Export(report, out); err != nil {
			return err
		}
		if resultsOutput != "" {
			fmt.Printf("Wrote %s results to %s\n", exporter.Extension(), resultsOutput)
		}
		return nil
	},
}

func renderTable(report *models.SessionResults) {
	fmt.Println(headerStyle.Render(report.Session.Title))
	if !report.Session.IsCompleted {
		fmt.Println(dateStyle.Render(fmt.Sprintf("In progress: %d/%d comparisons (%d%%)",
			report.Progress.Completed, report.Progress.Total, report.Progress.Percentage)))
	}
	fmt.Println()

	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("Rank")+"\t"+titleStyle.Render("Item")+"\t"+titleStyle.Render("Wins")+"\t"+titleStyle.Render("Win Rate")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 50))
	for _, r := range report.Rankings {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d%%\t\n",
			rankLabel(r.Rank), r.Item, r.Wins, r.Appearances, r.WinRate)
	}
	_ = w.Flush()
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf(" %d", rank)
	}
}

func init() {
	rootCmd.AddCommand(resultsCmd)
	resultsCmd.Flags().StringVar(&resultsFormat, "format", "table", "Output format: table, json, yaml, md")
	resultsCmd.Flags().StringVarP(&resultsOutput, "output", "o", "", "Write to a file instead of stdout")
}
