// Where: cli/cmd/runtests/main.go
// What: CLI entrypoint.
// Why: Execute suite runs with configured dependencies.
package main

import (
	"os"

	"github.com/devbox/runtests/cli/internal/app"
)

func main() {
	deps, stop := buildDependencies()
	defer stop()

	os.Exit(app.Run(os.Args[1:], deps))
}
