package cli

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/floatzone/pkg/errors"
	"github.com/matzehuels/floatzone/pkg/scenario"
)

// verifyCommand creates the verify command, which checks the placer against
// the brute-force reference.
func (c *CLI) verifyCommand() *cobra.Command {
	var opts randomOptions

	cmd := &cobra.Command{
		Use:   "verify [scenario...]",
		Short: "Check placements against the brute-force placer",
		Long: `Check placements against the brute-force placer.

Without arguments, verify generates --count random scenarios of --floats
floats each, in a block --width wide. Scenario i uses seed --seed+i, so a
failure can be reproduced by rerunning with that seed and --count 1.

With arguments, the given scenario files are verified instead and their
expectations are checked too.

Scenarios are verified in parallel by --workers goroutines.`,
		ValidArgsFunction: completeScenarioFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.setDefaults()
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runVerify(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", defaultCount, "number of random scenarios")
	cmd.Flags().IntVar(&opts.floats, "floats", defaultFloats, "floats per random scenario")
	cmd.Flags().IntVar(&opts.width, "width", defaultWidth, "containing block inline size")
	cmd.Flags().Uint64Var(&opts.seed, "seed", defaultSeed, "seed of the first random scenario")
	cmd.Flags().IntVarP(&opts.workers, "workers", "j", defaultWorkers, "scenarios verified in parallel")

	return cmd
}

// scenarioSource produces the i-th scenario of a verify run.
type scenarioSource func(i int) (*scenario.Scenario, error)

func (c *CLI) runVerify(ctx context.Context, paths []string, opts randomOptions) error {
	logger := loggerFromContext(ctx)
	runID := uuid.NewString()

	count := opts.count
	source := scenarioSource(func(i int) (*scenario.Scenario, error) {
		s := scenario.Random(opts.seed+uint64(i), opts.floats, opts.width)
		s.RespectOrder = i%2 == 1
		return s, nil
	})
	if len(paths) > 0 {
		count = len(paths)
		source = func(i int) (*scenario.Scenario, error) { return scenario.Load(paths[i]) }
	}
	logger.Info("verifying", "run", runID, "scenarios", count, "workers", opts.workers)

	// Per-scenario summaries only show up with --verbose.
	quiet := c.Logger.With("run", runID)
	if quiet.GetLevel() > log.DebugLevel {
		quiet.SetLevel(log.WarnLevel)
	}
	failed, err := verifyAll(ctx, scenario.NewRunner(quiet), count, opts.workers, source)
	if err != nil {
		return err
	}

	if len(failed) > 0 {
		for _, res := range failed {
			printError("%s", res.Name)
			for _, m := range res.Mismatches {
				printDetail("%s", m)
			}
		}
		return errors.New(errors.ErrCodeMismatch, "run %s: %d of %d scenarios failed", runID, len(failed), count)
	}
	printSuccess("Verified %d scenarios", count)
	printKeyValue("run", runID)
	return nil
}

// verifyAll verifies count scenarios with at most workers running at once
// and returns the results that had mismatches, in scenario order.
func verifyAll(ctx context.Context, runner *scenario.Runner, count, workers int, source scenarioSource) ([]*scenario.Result, error) {
	prog := newProgress(loggerFromContext(ctx))
	results := make([]*scenario.Result, count)
	var finished atomic.Int64

	spinner := newSpinner(ctx, fmt.Sprintf("Verifying %d scenarios...", count))
	spinner.Start()
	defer spinner.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range count {
		g.Go(func() error {
			s, err := source(i)
			if err != nil {
				return err
			}
			res, err := runner.Verify(gctx, s)
			if err != nil {
				return fmt.Errorf("verify %s: %w", s.Name, err)
			}
			results[i] = res
			spinner.Update("Verified %d/%d scenarios", finished.Add(1), count)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Verified %d scenarios", count))

	var failed []*scenario.Result
	for _, res := range results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed, nil
}
