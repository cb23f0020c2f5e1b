// Where: cli/internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize indentation and structure across suites.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted suite output.
type Console struct {
	Out io.Writer
}

// New creates a Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a section header with an emoji.
// Example: 🧪 Running suite: lint
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s %s\n", emoji, title)
}

// Item prints an indented key-value line.
// Example:    Project:   runtests-acme-webapp
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-12s %v\n", key+":", value)
}

// ItemPlain prints a generic indented line.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Info prints an informational message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}
