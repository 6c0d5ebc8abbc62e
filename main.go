package main

import (
	"log/slog"
	"os"

	"github.com/danielhkuo/comparely/cmd"
)

func main() {
	// Keep informational logging out of command output; stdout is reserved
	// for the commands themselves.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cmd.Execute()
}
