// Where: cli/internal/config/global.go
// What: Global config load helpers.
// Why: Manage ~/.runtests/config.yaml consistently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devbox/runtests/cli/internal/envutil"
	"github.com/devbox/runtests/cli/internal/phpver"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.runtests/config.yaml global configuration.
// All fields are optional overrides for filesystem- and flag-derived defaults.
type GlobalConfig struct {
	RootPath    string `yaml:"root_path,omitempty"`
	ImagePrefix string `yaml:"image_prefix,omitempty"`
	DefaultPHP  string `yaml:"default_php,omitempty"`
}

// GlobalConfigPath returns the path to the global config file.
// Respects the RUNTESTS_CONFIG_HOME environment variable.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv("CONFIG_HOME")); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".runtests", "config.yaml"), nil
}

// LoadGlobalConfig reads and parses the global configuration file.
// A missing file is not an error and yields the zero config.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return GlobalConfig{}, nil
		}
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DefaultPHP != "" {
		if err := phpver.Validate(cfg.DefaultPHP); err != nil {
			return GlobalConfig{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return cfg, nil
}

// LoadDefaultGlobalConfig loads the global config from its default
// location. An unresolvable home directory counts as having no config;
// a malformed or invalid config file is an error.
func LoadDefaultGlobalConfig() (GlobalConfig, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return GlobalConfig{}, nil
	}
	return LoadGlobalConfig(path)
}
