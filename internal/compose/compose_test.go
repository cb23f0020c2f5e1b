// Where: cli/internal/compose/compose_test.go
// What: Tests for compose command construction and exit-code capture.
// Why: Suite results must flow through unchanged and teardown args stay stable.
package compose

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/devbox/runtests/cli/internal/config"
)

type fakeRunner struct {
	dir   string
	name  string
	args  []string
	err   error
	quiet bool
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.dir = dir
	f.name = name
	f.args = append([]string{}, args...)
	return f.err
}

func (f *fakeRunner) RunQuiet(ctx context.Context, dir, name string, args ...string) error {
	f.quiet = true
	return f.Run(ctx, dir, name, args...)
}

func TestRunServiceBuildsCommand(t *testing.T) {
	runner := &fakeRunner{}
	opts := Options{
		RootDir: "/srv/webapp",
		Project: "runtests-acme-webapp",
		EnvFile: "/srv/webapp/.runtests.env",
	}

	code, err := RunService(context.Background(), runner, opts, "lint")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if runner.name != "docker" {
		t.Fatalf("expected docker command, got %s", runner.name)
	}
	expected := []string{
		"compose",
		"-p", "runtests-acme-webapp",
		"-f", filepath.Join("/srv/webapp", config.ComposeFileName),
		"--env-file", "/srv/webapp/.runtests.env",
		"run", "--rm", "lint",
	}
	if !reflect.DeepEqual(runner.args, expected) {
		t.Fatalf("unexpected args:\ngot:  %v\nwant: %v", runner.args, expected)
	}
	if runner.dir != "/srv/webapp" {
		t.Fatalf("unexpected working dir: %s", runner.dir)
	}
}

func TestRunServiceAppendsExtraArgs(t *testing.T) {
	runner := &fakeRunner{}
	opts := Options{RootDir: "/srv/webapp", Project: "p", EnvFile: "/srv/webapp/.runtests.env"}

	if _, err := RunService(context.Background(), runner, opts, "style", "--dry-run", "--diff"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	tail := runner.args[len(runner.args)-3:]
	if !reflect.DeepEqual(tail, []string{"style", "--dry-run", "--diff"}) {
		t.Fatalf("extra args not forwarded: %v", runner.args)
	}
}

func TestRunServicePropagatesExitCode(t *testing.T) {
	// Produce a genuine *exec.ExitError to mirror what ExecRunner returns.
	exitErr := exec.Command("sh", "-c", "exit 7").Run()
	var asExit *exec.ExitError
	if !errors.As(exitErr, &asExit) {
		t.Skipf("could not produce exit error: %v", exitErr)
	}

	runner := &fakeRunner{err: exitErr}
	opts := Options{RootDir: "/srv/webapp", Project: "p"}

	code, err := RunService(context.Background(), runner, opts, "lint")
	if err != nil {
		t.Fatalf("expected exit code, got error %v", err)
	}
	if code != 7 {
		t.Fatalf("expected exit code 7, got %d", code)
	}
}

func TestRunServiceWrapsInvocationFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("docker missing")}
	opts := Options{RootDir: "/srv/webapp", Project: "p"}

	_, err := RunService(context.Background(), runner, opts, "lint")
	if err == nil {
		t.Fatalf("expected error for invocation failure")
	}
}

func TestRunServiceNilRunner(t *testing.T) {
	if _, err := RunService(context.Background(), nil, Options{}, "lint"); err == nil {
		t.Fatalf("expected error for nil runner")
	}
}

func TestDownProjectBuildsCommand(t *testing.T) {
	runner := &fakeRunner{}
	opts := Options{
		RootDir: "/srv/webapp",
		Project: "runtests-acme-webapp",
		EnvFile: "/srv/webapp/.runtests.env",
	}

	if err := DownProject(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !runner.quiet {
		t.Fatalf("expected teardown to use the quiet runner")
	}
	expected := []string{
		"compose",
		"-p", "runtests-acme-webapp",
		"-f", filepath.Join("/srv/webapp", config.ComposeFileName),
		"--env-file", "/srv/webapp/.runtests.env",
		"down", "--remove-orphans",
	}
	if !reflect.DeepEqual(runner.args, expected) {
		t.Fatalf("unexpected args:\ngot:  %v\nwant: %v", runner.args, expected)
	}
}
