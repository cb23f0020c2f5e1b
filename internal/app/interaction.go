// Where: cli/internal/app/interaction.go
// What: TTY detection and interactive prompts.
// Why: Support an optional confirmation before image removal.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var isTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	info, err := file.Stat()
	if err != nil {
		return false
	}
	// Character device and one of the standard streams; pipes and
	// redirects fail the mode check.
	return (info.Mode()&os.ModeCharDevice) != 0 && (fd == 0 || fd == 1 || fd == 2)
}

var promptYesNo = func(message string) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	trimmed := strings.TrimSpace(strings.ToLower(line))
	return trimmed == "y" || trimmed == "yes", nil
}
