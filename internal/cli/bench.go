package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floatzone/pkg/floats"
	"github.com/matzehuels/floatzone/pkg/floats/naive"
	"github.com/matzehuels/floatzone/pkg/scenario"
)

// benchOpts holds the command-line flags for the bench command.
type benchOpts struct {
	floats int
	width  int
	seed   uint64
	naive  bool // also time the brute-force placer
}

// benchResult is what one placer did with the benchmark scenario.
type benchResult struct {
	duration time.Duration
	probes   int
	visited  int
	work     int
	bands    int
}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	opts := benchOpts{floats: benchFloats, width: defaultWidth, seed: defaultSeed}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure placement cost on a random scenario",
		Long: `Measure placement cost on a random scenario.

Places --floats random floats in one containing block and reports the time
taken, the number of windows probed, the bands they examined and the splay
tree nodes visited. With --naive the brute-force placer is timed on the same
floats for comparison; expect it to be much slower.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ro := randomOptions{count: 1, floats: opts.floats, width: opts.width, workers: 1}
			if err := ro.validate(); err != nil {
				return err
			}
			return c.runBench(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.floats, "floats", "n", opts.floats, "number of floats to place")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "containing block inline size")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().BoolVar(&opts.naive, "naive", false, "also time the brute-force placer")

	return cmd
}

func (c *CLI) runBench(ctx context.Context, opts benchOpts) error {
	logger := loggerFromContext(ctx)
	s := scenario.Random(opts.seed, opts.floats, opts.width)
	logger.Info("generated scenario", "name", s.Name, "floats", len(s.Floats), "width", s.InlineSize)

	res, err := benchContext(ctx, s)
	if err != nil {
		return err
	}
	printSuccess("Placed %d floats", opts.floats)
	printKeyValue("time", res.duration.String())
	printKeyValue("per float", perFloat(res.duration, opts.floats).String())
	printKeyValue("probes", fmt.Sprintf("%d (%.2f per float)", res.probes, ratio(res.probes, opts.floats)))
	printKeyValue("bands visited", fmt.Sprintf("%d (%.2f per float)", res.visited, ratio(res.visited, opts.floats)))
	printKeyValue("tree work", fmt.Sprintf("%d (%.2f per float)", res.work, ratio(res.work, opts.floats)))
	printKeyValue("final bands", fmt.Sprint(res.bands))

	if !opts.naive {
		return nil
	}
	ref, err := benchNaive(ctx, s)
	if err != nil {
		return err
	}
	printNewline()
	printInfo("Brute-force placer")
	printKeyValue("time", ref.duration.String())
	printKeyValue("probes", fmt.Sprint(ref.probes))
	if res.duration > 0 {
		printKeyValue("speedup", fmt.Sprintf("%.1fx", float64(ref.duration)/float64(res.duration)))
	}
	return nil
}

// benchContext places the floats of s with a float context, logging
// progress every tenth of the way at debug level.
func benchContext(ctx context.Context, s *scenario.Scenario) (benchResult, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	fc := floats.New(s.InlineSize)
	step := max(len(s.Floats)/10, 1)

	var res benchResult
	for i, f := range s.Floats {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		p := fc.Place(f.Request())
		res.probes += p.Probes
		res.visited += p.Bands
		if (i+1)%step == 0 {
			logger.Debug("progress", "floats", i+1, "bands", len(fc.Bands()), "work", fc.Work(), "elapsed", prog.elapsed())
		}
	}
	res.duration = prog.elapsed()
	res.work = fc.Work()
	res.bands = len(fc.Bands())
	prog.done(fmt.Sprintf("Placed %d floats", len(s.Floats)))
	return res, nil
}

func benchNaive(ctx context.Context, s *scenario.Scenario) (benchResult, error) {
	prog := newProgress(loggerFromContext(ctx))
	p := naive.New(s.InlineSize)

	spinner := newSpinner(ctx, "Running brute-force placer...")
	spinner.Start()
	defer spinner.Stop()

	var res benchResult
	for _, f := range s.Floats {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.probes += p.Place(f.Request()).Probes
	}
	res.duration = prog.elapsed()
	return res, nil
}

func perFloat(d time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return d / time.Duration(n)
}

func ratio(a, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(a) / float64(n)
}
