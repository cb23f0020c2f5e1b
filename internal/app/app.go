// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable suite dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/devbox/runtests/cli/internal/compose"
	"github.com/devbox/runtests/cli/internal/config"
	"github.com/devbox/runtests/cli/internal/images"
	"github.com/devbox/runtests/cli/internal/logging"
	"github.com/devbox/runtests/cli/internal/phpver"
	"github.com/devbox/runtests/cli/internal/version"
)

// Dependencies holds all injected dependencies required for suite execution.
// This structure enables dependency injection for testing and allows swapping
// implementations of the subprocess and Docker layers.
type Dependencies struct {
	Context       context.Context
	Out           io.Writer
	ErrOut        io.Writer
	Getwd         func() (string, error)
	LookPath      func(string) (string, error)
	RootResolver  func(string) (string, error)
	Runner        compose.CommandRunner
	DockerFactory func() (images.DockerClient, error)
	GlobalConfig  func() (config.GlobalConfig, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Suite        string `short:"s" default:"style-check-and-fix" help:"Suite to run"`
	Php          string `short:"p" help:"PHP version to run the suite against"`
	DryRun       bool   `short:"n" name:"dry-run" help:"Report style changes without modifying files"`
	Verbose      bool   `short:"v" help:"Enable verbose output"`
	UpdateImages bool   `short:"u" name:"update-images" help:"Shortcut for --suite image-maintenance"`
	Yes          bool   `short:"y" help:"Skip the confirmation prompt for image removal"`
	Version      bool   `help:"Print version and exit"`
}

// runInput carries the fully resolved configuration for one dispatch.
type runInput struct {
	Suite       Suite
	PHP         string
	ImagePrefix string
	Verbose     bool
	DryRun      bool
	Yes         bool
}

// Run is the main entry point for suite execution. It parses the
// command-line arguments, resolves the requested suite, and dispatches to
// the appropriate handler. Returns the process exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	// Help short-circuits everything, including invalid flags.
	if hasHelpFlag(args) {
		printUsage(out)
		return 0
	}

	if issues := collectArgIssues(args); len(issues) > 0 {
		fmt.Fprintf(errOut, "invalid arguments:\n")
		for _, issue := range issues {
			fmt.Fprintf(errOut, "  - %s\n", issue)
		}
		printUsage(errOut)
		return 1
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Exit(func(int) {}))
	if err != nil {
		return exitWithError(errOut, err)
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(errOut, err)
		printUsage(errOut)
		return 1
	}

	if cli.Version {
		fmt.Fprintln(out, "runtests "+version.String())
		return 0
	}

	// Load a local .env before anything reads RUNTESTS_ variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(errOut, "Warning: failed to load .env: %v\n", err)
		}
	}

	logger := logging.New(errOut, cli.Verbose)

	loadConfig := deps.GlobalConfig
	if loadConfig == nil {
		loadConfig = config.LoadDefaultGlobalConfig
	}
	cfg, err := loadConfig()
	if err != nil {
		return exitWithError(errOut, err)
	}

	input, err := resolveInput(cli, cfg)
	if err != nil {
		fmt.Fprintln(errOut, err)
		printUsage(errOut)
		return 1
	}

	return dispatch(runContext(deps), input, deps, out, errOut, logger)
}

// resolveInput validates the flag values against their fixed sets and
// merges in global config defaults. All violations are reported together.
func resolveInput(cli CLI, cfg config.GlobalConfig) (runInput, error) {
	phpVersion := strings.TrimSpace(cli.Php)
	if phpVersion == "" {
		phpVersion = cfg.DefaultPHP
	}
	if phpVersion == "" {
		phpVersion = phpver.Default
	}

	var problems []string
	suite, err := ParseSuite(cli.Suite)
	if err != nil {
		problems = append(problems, err.Error())
	}
	if err := phpver.Validate(phpVersion); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return runInput{}, fmt.Errorf("%s", strings.Join(problems, "\n"))
	}

	if cli.UpdateImages {
		suite = SuiteImages
	}

	return runInput{
		Suite:       suite,
		PHP:         phpVersion,
		ImagePrefix: cfg.ImagePrefix,
		Verbose:     cli.Verbose,
		DryRun:      cli.DryRun,
		Yes:         cli.Yes,
	}, nil
}

// dispatch routes a resolved input to its suite handler. The switch is
// exhaustive over the Suite enum; unrecognized names never reach it
// because ParseSuite already rejected them.
func dispatch(ctx context.Context, input runInput, deps Dependencies, out, errOut io.Writer, logger *slog.Logger) int {
	switch input.Suite {
	case SuiteDocs, SuiteStyle, SuiteDeps, SuiteLint:
		var extra []string
		if input.Suite == SuiteStyle && input.DryRun {
			// The style tool expects its own spelling of dry-run.
			extra = []string{"--dry-run", "--diff"}
		}
		return runComposeSuite(ctx, input, deps, out, errOut, logger, extra)
	case SuiteImages:
		return runImageMaintenance(ctx, input, deps, out, errOut, logger)
	default:
		fmt.Fprintf(errOut, "unknown suite %q\n", input.Suite)
		printUsage(errOut)
		return 1
	}
}

// runContext returns the context suite invocations run under.
func runContext(deps Dependencies) context.Context {
	if deps.Context != nil {
		return deps.Context
	}
	return context.Background()
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}

// lookPath resolves the injected or default binary lookup.
func lookPath(deps Dependencies) func(string) (string, error) {
	if deps.LookPath != nil {
		return deps.LookPath
	}
	return exec.LookPath
}

// getwd resolves the injected or default working directory lookup.
func getwd(deps Dependencies) func() (string, error) {
	if deps.Getwd != nil {
		return deps.Getwd
	}
	return os.Getwd
}

// rootResolver resolves the injected or default project root discovery.
func rootResolver(deps Dependencies) func(string) (string, error) {
	if deps.RootResolver != nil {
		return deps.RootResolver
	}
	return config.ResolveRootDir
}
