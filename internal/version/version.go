// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Provide build-time version information to the --version flag.
package version

import "runtime/debug"

// String returns the version derived from embedded build info: the short
// VCS revision, with a -dirty suffix for modified trees, or "dev" when no
// build info is available.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	revision := "dev"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 8 {
				revision = setting.Value[:8]
			} else if setting.Value != "" {
				revision = setting.Value
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if dirty && revision != "dev" {
		return revision + "-dirty"
	}
	return revision
}
