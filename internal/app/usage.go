// Where: cli/internal/app/usage.go
// What: Usage text.
// Why: One stable help screen printed on help and on every flag error.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/devbox/runtests/cli/internal/phpver"
)

// printUsage writes the help screen.
func printUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage: runtests [options]

Run one of the project's containerized test suites via docker compose.

Options:
  -s, --suite <name>     Suite to run (default: %s)
                         Available: %s
  -p, --php <version>    PHP version: %s (default: %s)
  -n, --dry-run          Report style changes without modifying files
  -v, --verbose          Enable verbose output
  -u, --update-images    Shortcut for --suite image-maintenance
  -y, --yes              Skip the confirmation prompt for image removal
      --version          Print version and exit
  -h, --help             Show this help and exit

The selected suite writes %s into the project root before starting;
concurrent runs in the same project race on that file.
`,
		DefaultSuiteName,
		strings.Join(AvailableSuites(), ", "),
		strings.Join(phpver.Supported, ", "),
		phpver.Default,
		".runtests.env",
	)
}
