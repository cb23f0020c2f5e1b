// Where: cli/internal/app/suite.go
// What: Suite enumeration and name resolution.
// Why: Dispatch suites through a typed enum instead of free-form strings.
package app

import (
	"fmt"
	"sort"
	"strings"
)

// Suite identifies one of the fixed check/action categories this tool
// can trigger.
type Suite int

const (
	// SuiteStyle runs the code style checker/fixer. Default.
	SuiteStyle Suite = iota
	// SuiteDocs runs the documentation checks.
	SuiteDocs
	// SuiteDeps runs the dependency update inside the container.
	SuiteDeps
	// SuiteLint runs the source linter.
	SuiteLint
	// SuiteImages refreshes and cleans locally cached suite images.
	SuiteImages
)

// DefaultSuiteName is used when no suite flag is given.
const DefaultSuiteName = "style-check-and-fix"

var suiteNames = map[string]Suite{
	"style-check-and-fix": SuiteStyle,
	"documentation-check": SuiteDocs,
	"dependency-update":   SuiteDeps,
	"lint":                SuiteLint,
	"image-maintenance":   SuiteImages,
}

// ParseSuite maps a user-supplied suite name to its enum value.
func ParseSuite(name string) (Suite, error) {
	if suite, ok := suiteNames[strings.TrimSpace(name)]; ok {
		return suite, nil
	}
	return 0, fmt.Errorf("unknown suite %q (available: %s)", name, strings.Join(AvailableSuites(), ", "))
}

// AvailableSuites returns the sorted list of recognized suite names.
func AvailableSuites() []string {
	names := make([]string, 0, len(suiteNames))
	for name := range suiteNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the canonical user-facing suite name.
func (s Suite) String() string {
	for name, suite := range suiteNames {
		if suite == s {
			return name
		}
	}
	return fmt.Sprintf("suite(%d)", int(s))
}

// serviceName maps a compose-backed suite to its service in the compose
// manifest. SuiteImages has no service; it talks to the image store directly.
func (s Suite) serviceName() string {
	switch s {
	case SuiteDocs:
		return "check-docs"
	case SuiteStyle:
		return "style"
	case SuiteDeps:
		return "composer-update"
	case SuiteLint:
		return "lint"
	default:
		return ""
	}
}
