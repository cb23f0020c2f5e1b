// Where: cli/cmd/runtests/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/devbox/runtests/cli/internal/app"
	"github.com/devbox/runtests/cli/internal/compose"
	"github.com/devbox/runtests/cli/internal/images"
)

// buildDependencies constructs the runtime dependencies for suite
// execution. The returned stop function releases the signal context;
// interrupts cancel the in-flight suite while teardown still runs.
func buildDependencies() (app.Dependencies, func()) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	deps := app.Dependencies{
		Context:       ctx,
		Out:           os.Stdout,
		ErrOut:        os.Stderr,
		Runner:        compose.ExecRunner{},
		DockerFactory: images.NewDockerClient,
	}
	return deps, stop
}
