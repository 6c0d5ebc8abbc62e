// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"

	"github.com/danielhkuo/comparely/models"
)

// MarkdownExporter writes results as a Markdown report with a standings table.
type MarkdownExporter struct{}

func (e *MarkdownExporter) Export(results *models.SessionResults, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# %s\n\n", results.Session.Title)

	status := "In progress"
	if results.Session.IsCompleted {
		status = "Completed"
	}
	_, _ = fmt.Fprintf(w, "**Status:** %s  \n", status)
	_, _ = fmt.Fprintf(w, "**Progress:** %d/%d comparisons (%d%%)\n\n",
		results.Progress.Completed, results.Progress.Total, results.Progress.Percentage)

	_, _ = fmt.Fprintf(w, "## Standings\n\n")
	_, _ = fmt.Fprintf(w, "| Rank | Item | Wins | Win Rate |\n")
	_, _ = fmt.Fprintf(w, "|------|------|------|----------|\n")
	for _, r := range results.Rankings {
		_, _ = fmt.Fprintf(w, "| %s | %s | %d/%d | %d%% |\n",
			medal(r.Rank), r.Item, r.Wins, r.Appearances, r.WinRate)
	}

	return nil
}

// medal decorates the top three ranks.
func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇 1"
	case 2:
		return "🥈 2"
	case 3:
		return "🥉 3"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

func (e *MarkdownExporter) Extension() string {
	return "md"
}
