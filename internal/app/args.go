// Where: cli/internal/app/args.go
// What: Pre-parse argument scanning.
// Why: Report all offending flags in one batch and short-circuit help.
package app

import (
	"fmt"
	"strings"
)

// knownFlags maps each recognized flag spelling to whether it consumes a
// value. The scan runs before kong so that every offending flag can be
// collected into a single report instead of failing one at a time.
var knownFlags = map[string]bool{
	"-s": true, "--suite": true,
	"-p": true, "--php": true,
	"-n": false, "--dry-run": false,
	"-v": false, "--verbose": false,
	"-u": false, "--update-images": false,
	"-y": false, "--yes": false,
	"-h": false, "--help": false,
	"--version": false,
}

// hasHelpFlag reports whether the help flag appears anywhere in the
// arguments. Help wins over everything else, including invalid flags.
func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// collectArgIssues scans the argument vector and returns one entry per
// unknown flag, per flag missing its required value, and per unexpected
// positional argument. Short flags may be bundled (-nv) or carry an
// inline value (-p8.1), matching how kong reads them.
func collectArgIssues(args []string) []string {
	var issues []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case !strings.HasPrefix(arg, "-") || arg == "-":
			issues = append(issues, fmt.Sprintf("unexpected argument %q", arg))
		case strings.HasPrefix(arg, "--"):
			name := arg
			hasInlineValue := false
			if eq := strings.IndexByte(arg, '='); eq >= 0 {
				name = arg[:eq]
				hasInlineValue = true
			}

			takesValue, known := knownFlags[name]
			if !known {
				issues = append(issues, fmt.Sprintf("unknown flag %q", name))
				continue
			}
			if takesValue && !hasInlineValue {
				if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
					issues = append(issues, fmt.Sprintf("flag %s requires a value", name))
					continue
				}
				i++
			}
		default:
			nextIsValue := i+1 < len(args) && !strings.HasPrefix(args[i+1], "-")
			consumeNext, bundleIssues := scanShortFlags(arg, nextIsValue)
			issues = append(issues, bundleIssues...)
			if consumeNext {
				i++
			}
		}
	}
	return issues
}

// scanShortFlags validates a short flag token, which may bundle several
// boolean flags (-nv) or end in a value-taking flag whose value is either
// the remainder of the token (-p8.1) or the next argument (-p 8.1).
// It reports whether the next argument is consumed as a value.
func scanShortFlags(arg string, nextIsValue bool) (bool, []string) {
	var issues []string
	rest := arg[1:]
	for pos := 0; pos < len(rest); pos++ {
		name := "-" + string(rest[pos])
		takesValue, known := knownFlags[name]
		if !known {
			issues = append(issues, fmt.Sprintf("unknown flag %q", name))
			continue
		}
		if !takesValue {
			continue
		}
		// The remainder of the token is this flag's value.
		if pos < len(rest)-1 {
			return false, issues
		}
		if nextIsValue {
			return true, issues
		}
		issues = append(issues, fmt.Sprintf("flag %s requires a value", name))
	}
	return false, issues
}
