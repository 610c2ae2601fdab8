// Package cli implements the floatzone command-line interface.
//
// The commands run float placement scenarios (place), check the placer
// against the brute-force reference on random input (verify), measure it
// (bench) and step through a scenario interactively (inspect). The CLI is
// built using cobra and logs through charmbracelet/log.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every placed float through the observability hooks. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floatzone/pkg/buildinfo"
	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/observability"
	"github.com/matzehuels/floatzone/pkg/scenario"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "floatzone"

	defaultCount   = 100  // random scenarios per verify run
	defaultFloats  = 200  // floats per random scenario
	defaultWidth   = 800  // containing block inline size of random scenarios
	defaultSeed    = 42   // first random seed
	defaultWorkers = 4    // scenarios verified in parallel
	benchFloats    = 5000 // floats placed by bench
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Floatzone places CSS floats and checks the placements",
		Long:         `Floatzone runs CSS 2.1 float placement scenarios through a band map backed by a splay tree, and checks the results against a brute-force placer.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			if c.Logger.GetLevel() <= log.DebugLevel {
				h := &logHooks{logger: c.Logger}
				observability.SetPlacementHooks(h)
				observability.SetScenarioHooks(h)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a scenario runner for CLI use.
func (c *CLI) newRunner() *scenario.Runner {
	return scenario.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// randomOptions configures commands that generate random scenarios.
type randomOptions struct {
	count   int    // number of scenarios
	floats  int    // floats per scenario
	width   int    // containing block inline size
	seed    uint64 // seed of the first scenario; scenario i uses seed+i
	workers int    // scenarios run in parallel
}

// setDefaults fills zero fields with the package defaults.
func (o *randomOptions) setDefaults() {
	if o.count == 0 {
		o.count = defaultCount
	}
	if o.floats == 0 {
		o.floats = defaultFloats
	}
	if o.width == 0 {
		o.width = defaultWidth
	}
	if o.workers == 0 {
		o.workers = defaultWorkers
	}
}

// validate rejects values setDefaults cannot repair.
func (o *randomOptions) validate() error {
	switch {
	case o.count < 0:
		return errors.New(errors.ErrCodeInvalidInput, "--count must be positive, got %d", o.count)
	case o.floats < 0:
		return errors.New(errors.ErrCodeInvalidInput, "--floats must be positive, got %d", o.floats)
	case o.width < 2:
		return errors.New(errors.ErrCodeInvalidSize, "--width must be at least 2, got %d", o.width)
	case o.workers < 0:
		return errors.New(errors.ErrCodeInvalidInput, "--workers must be positive, got %d", o.workers)
	}
	return nil
}
