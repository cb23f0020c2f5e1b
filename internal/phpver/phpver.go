// Where: cli/internal/phpver/phpver.go
// What: Supported PHP version set and image tag derivation.
// Why: Keep the version enumeration and its container tag mapping in one place.
package phpver

import (
	"fmt"
	"strings"
)

// Supported lists the PHP versions the test containers are built for,
// lowest first. The default selects the lowest supported version so that
// style and lint results stay compatible with the oldest target.
var Supported = []string{"7.4", "8.0", "8.1", "8.2"}

// Default is the version used when none is selected.
const Default = "7.4"

// Validate reports whether the given version belongs to the supported set.
func Validate(version string) error {
	normalized := strings.TrimSpace(version)
	for _, v := range Supported {
		if normalized == v {
			return nil
		}
	}
	return fmt.Errorf("unsupported PHP version %q (supported: %s)", version, strings.Join(Supported, ", "))
}

// ImageTag derives the container image tag for a PHP version by
// stripping separators. Example: "8.1" becomes "php81".
func ImageTag(version string) string {
	return "php" + strings.ReplaceAll(strings.TrimSpace(version), ".", "")
}
