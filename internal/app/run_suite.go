// Where: cli/internal/app/run_suite.go
// What: Compose-backed suite execution.
// Why: Materialize the descriptor, run the suite service, always tear down.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/devbox/runtests/cli/internal/compose"
	"github.com/devbox/runtests/cli/internal/envfile"
	"github.com/devbox/runtests/cli/internal/ui"
)

// runComposeSuite executes a suite backed by a compose service:
// descriptor first, then docker compose run --rm, then unconditional
// teardown. The service's exit code becomes the process exit code.
func runComposeSuite(ctx context.Context, input runInput, deps Dependencies, out, errOut io.Writer, logger *slog.Logger, extra []string) int {
	if _, err := lookPath(deps)("docker"); err != nil {
		return exitWithError(errOut, fmt.Errorf("docker command not found in PATH: %w", err))
	}

	cwd, err := getwd(deps)()
	if err != nil {
		return exitWithError(errOut, err)
	}
	root, err := rootResolver(deps)(cwd)
	if err != nil {
		return exitWithError(errOut, err)
	}

	descriptor := envfile.New(root, input.PHP, input.ImagePrefix, input.Verbose, input.DryRun)
	envPath, err := descriptor.Write(root)
	if err != nil {
		return exitWithError(errOut, err)
	}

	console := ui.New(out)
	console.Header("🧪", "Running suite: "+input.Suite.String())
	console.Item("Project", descriptor.Project)
	console.Item("PHP image", descriptor.ImagePrefix+descriptor.ImageTag)
	logger.Debug("descriptor written", "path", envPath)

	opts := compose.Options{
		RootDir: root,
		Project: descriptor.Project,
		EnvFile: envPath,
	}

	// Teardown must run on every exit path, including cancellation of the
	// suite context, so it gets a fresh background context.
	defer func() {
		if err := compose.DownProject(context.Background(), deps.Runner, opts); err != nil {
			logger.Warn("teardown failed", "project", descriptor.Project, "error", err)
		}
	}()

	code, err := compose.RunService(ctx, deps.Runner, opts, input.Suite.serviceName(), extra...)
	if err != nil {
		return exitWithError(errOut, err)
	}
	if code != 0 {
		logger.Debug("suite failed", "suite", input.Suite.String(), "code", code)
		return code
	}

	console.Success("Suite " + input.Suite.String() + " passed")
	return 0
}
