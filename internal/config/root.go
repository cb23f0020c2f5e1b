// Where: cli/internal/config/root.go
// What: Project root discovery logic.
// Why: Centralize logic to find the project root from env, file system, or config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devbox/runtests/cli/internal/envutil"
)

// ComposeFileName is the compose manifest that marks the project root and
// declares the suite services consumed by this tool.
const ComposeFileName = "docker-compose.runtests.yml"

// ResolveRootDir determines the project root path.
// Priority:
// 1. RUNTESTS_ROOT environment variable (validated as root or searched upward)
// 2. Upward search for the compose manifest from startDir
// 3. root_path in the global config (~/.runtests/config.yaml)
func ResolveRootDir(startDir string) (string, error) {
	if root := strings.TrimSpace(envutil.GetHostEnv("ROOT")); root != "" {
		if dir, ok := findRootDir(root); ok {
			return dir, nil
		}
	}

	if startDir != "" {
		if dir, ok := findRootDir(startDir); ok {
			return dir, nil
		}
	}

	if cfgPath, err := GlobalConfigPath(); err == nil {
		if cfg, err := LoadGlobalConfig(cfgPath); err == nil && cfg.RootPath != "" {
			if dir, ok := findRootDir(cfg.RootPath); ok {
				return dir, nil
			}
		}
	}

	return "", fmt.Errorf("project root not found: no %s in any parent directory; set %s or root_path in the global config", ComposeFileName, envutil.HostEnvKey("ROOT"))
}

// findRootDir searches upward from the given path for a directory
// containing the compose manifest. The result is canonicalized through
// symlink resolution when possible, falling back to the absolute path.
func findRootDir(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ComposeFileName)); err == nil {
			if resolved, err := filepath.EvalSymlinks(dir); err == nil {
				return resolved, true
			}
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}
