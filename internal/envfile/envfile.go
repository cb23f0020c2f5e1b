// Where: cli/internal/envfile/envfile.go
// What: Environment descriptor derivation and writing.
// Why: Materialize the single file contract consumed by docker compose.
package envfile

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/devbox/runtests/cli/internal/phpver"
)

// FileName is the descriptor file written into the project root before
// any compose invocation. It is overwritten on every run.
const FileName = ".runtests.env"

// DefaultImagePrefix is the registry prefix used when the global config
// supplies no override.
const DefaultImagePrefix = "ghcr.io/runtests/"

// Descriptor holds the eight values handed to the orchestration layer.
// Key order in the written file is fixed and matches the field order.
type Descriptor struct {
	Project     string
	UID         string
	RootDir     string
	User        string
	ImageTag    string
	ImagePrefix string
	Verbose     bool
	DryRun      bool
}

// New builds a descriptor for the given root directory, deriving the
// project name from the directory layout and the image tag from the
// selected PHP version.
func New(rootDir, phpVersion, imagePrefix string, verbose, dryRun bool) Descriptor {
	if strings.TrimSpace(imagePrefix) == "" {
		imagePrefix = DefaultImagePrefix
	}
	return Descriptor{
		Project:     ProjectName(rootDir),
		UID:         strconv.Itoa(os.Getuid()),
		RootDir:     rootDir,
		User:        currentUserName(),
		ImageTag:    phpver.ImageTag(phpVersion),
		ImagePrefix: imagePrefix,
		Verbose:     verbose,
		DryRun:      dryRun,
	}
}

// ProjectName derives a stable compose project identifier from the root
// directory and its parent: runtests-<parent>-<project>, lower-cased,
// with whitespace collapsed and replaced by dashes.
func ProjectName(rootDir string) string {
	project := sanitizeNamePart(filepath.Base(rootDir))
	parent := sanitizeNamePart(filepath.Base(filepath.Dir(rootDir)))
	return fmt.Sprintf("runtests-%s-%s", parent, project)
}

// sanitizeNamePart lowers the name and joins its whitespace-separated
// fields with dashes, collapsing runs of internal whitespace.
func sanitizeNamePart(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// Write replaces the descriptor file at the given directory. All eight
// keys are written in a fixed order; the orchestration layer depends on
// the file being complete before compose starts.
func (d Descriptor) Write(dir string) (string, error) {
	var b strings.Builder
	for _, pair := range d.pairs() {
		fmt.Fprintf(&b, "%s=%s\n", pair[0], pair[1])
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write descriptor %s: %w", path, err)
	}
	return path, nil
}

// pairs returns the ordered key/value pairs of the descriptor.
func (d Descriptor) pairs() [][2]string {
	return [][2]string{
		{"COMPOSE_PROJECT_NAME", d.Project},
		{"HOST_UID", d.UID},
		{"ROOT_DIR", d.RootDir},
		{"HOST_USER", d.User},
		{"PHP_IMAGE_TAG", d.ImageTag},
		{"IMAGE_PREFIX", d.ImagePrefix},
		{"VERBOSE", boolFlag(d.Verbose)},
		{"DRY_RUN", boolFlag(d.DryRun)},
	}
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// currentUserName resolves the invoking user's name, falling back to the
// USER environment variable when the lookup fails (e.g. static builds).
func currentUserName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
