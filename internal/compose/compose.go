// Where: cli/internal/compose/compose.go
// What: Docker compose command helpers for running suite services.
// Why: Build compose invocations consistently and capture their exit codes.
package compose

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/devbox/runtests/cli/internal/config"
)

// Options identifies a compose project invocation: where it runs, under
// which project name, and which env file feeds variable substitution.
type Options struct {
	RootDir string
	Project string
	EnvFile string
}

// baseArgs builds the shared compose argument prefix for a project.
func baseArgs(opts Options) []string {
	args := []string{
		"compose",
		"-p", opts.Project,
		"-f", filepath.Join(opts.RootDir, config.ComposeFileName),
	}
	if opts.EnvFile != "" {
		args = append(args, "--env-file", opts.EnvFile)
	}
	return args
}

// RunService runs a one-off suite service via docker compose run --rm and
// returns its exit code. A non-zero service exit is reported through the
// code, not the error; the error is reserved for invocation failures.
func RunService(ctx context.Context, runner CommandRunner, opts Options, service string, extra ...string) (int, error) {
	if runner == nil {
		return 0, fmt.Errorf("command runner is nil")
	}

	args := append(baseArgs(opts), "run", "--rm", service)
	args = append(args, extra...)

	err := runner.Run(ctx, opts.RootDir, "docker", args...)
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("run service %s: %w", service, err)
}

// DownProject tears down the compose project. It is called on every exit
// path after a suite ran, so failures are surfaced but never fatal to the
// suite result.
func DownProject(ctx context.Context, runner CommandRunner, opts Options) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	args := append(baseArgs(opts), "down", "--remove-orphans")
	return runner.RunQuiet(ctx, opts.RootDir, "docker", args...)
}
