// Where: cli/internal/app/images.go
// What: Image maintenance suite handler.
// Why: Refresh latest suite images and clear dangling leftovers, best effort.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/devbox/runtests/cli/internal/envfile"
	"github.com/devbox/runtests/cli/internal/images"
	"github.com/devbox/runtests/cli/internal/ui"
)

// runImageMaintenance refreshes latest-tagged suite images and removes
// dangling ones. It never propagates a maintenance failure as the exit
// code; only an unreachable image store is fatal.
func runImageMaintenance(ctx context.Context, input runInput, deps Dependencies, out, errOut io.Writer, logger *slog.Logger) int {
	factory := deps.DockerFactory
	if factory == nil {
		factory = images.NewDockerClient
	}
	client, err := factory()
	if err != nil {
		return exitWithError(errOut, fmt.Errorf("connect to docker: %w", err))
	}

	prefix := strings.TrimSpace(input.ImagePrefix)
	if prefix == "" {
		prefix = envfile.DefaultImagePrefix
	}

	console := ui.New(out)
	console.Header("🐳", "Maintaining suite images under "+prefix)

	maintainer := images.Maintainer{Client: client, Log: logger}

	pulled, err := maintainer.RefreshLatest(ctx, prefix)
	if err != nil {
		logger.Warn("image refresh failed", "error", err)
	}
	for _, ref := range pulled {
		console.ItemPlain("refreshed " + ref)
	}

	if !confirmRemoval(input.Yes) {
		console.Info("Skipping dangling image removal")
		return 0
	}

	removed, err := maintainer.RemoveDangling(ctx, prefix)
	if err != nil {
		logger.Warn("dangling image removal failed", "error", err)
	}
	for _, id := range removed {
		console.ItemPlain("removed " + id)
	}

	console.Success(fmt.Sprintf("Image maintenance done (%d refreshed, %d removed)", len(pulled), len(removed)))
	return 0
}

// confirmRemoval decides whether dangling images may be deleted. Without
// --yes it asks on a terminal and declines everywhere else.
func confirmRemoval(yes bool) bool {
	if yes {
		return true
	}
	if !isTerminal(os.Stdin) {
		return false
	}
	confirmed, err := promptYesNo("Remove dangling suite images?")
	if err != nil {
		return false
	}
	return confirmed
}
