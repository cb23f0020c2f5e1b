// Where: cli/internal/logging/logging.go
// What: Diagnostic logger construction.
// Why: Keep the verbose/debug channel separate from user-facing console output.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to the provided writer. Verbose mode
// lowers the level to debug; everything else stays at info.
func New(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
