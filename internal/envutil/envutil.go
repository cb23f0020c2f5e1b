// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"
	"strings"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the RUNTESTS prefix with the given suffix.
// Example: HostEnvKey("ROOT") returns "RUNTESTS_ROOT"
func HostEnvKey(suffix string) string {
	return "RUNTESTS_" + strings.TrimSpace(suffix)
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("ROOT") returns the value of RUNTESTS_ROOT
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// SetHostEnv sets a host-level environment variable.
func SetHostEnv(suffix, value string) {
	_ = os.Setenv(HostEnvKey(suffix), value)
}
