package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floatzone/pkg/scenario"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	output       string // result JSON path
	showBands    bool   // print the final band map
	respectOrder bool   // force the ordering rule on
}

// placeCommand creates the place command for running a scenario file.
func (c *CLI) placeCommand() *cobra.Command {
	var opts placeOpts

	cmd := &cobra.Command{
		Use:   "place [scenario]",
		Short: "Place the floats of a scenario file",
		Long: `Place the floats of a scenario file.

The scenario (.toml or .json) lists a containing block width and the floats to
place in it, in order. Each float is placed as high as possible, then as far
toward its side as possible. Floats and clearance queries carrying an
expectation are checked; the command fails if any expectation is not met.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScenarioFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlace(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result as JSON to this file")
	cmd.Flags().BoolVar(&opts.showBands, "bands", false, "print the final band map")
	cmd.Flags().BoolVar(&opts.respectOrder, "respect-order", false, "never place a float above the float before it")

	return cmd
}

// runPlace loads the scenario, runs it and prints the placements.
func (c *CLI) runPlace(ctx context.Context, path string, opts placeOpts) error {
	s, err := scenario.Load(path)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	if opts.respectOrder {
		s.RespectOrder = true
	}

	res, err := c.newRunner().Run(ctx, s)
	if err != nil {
		return fmt.Errorf("run %s: %w", s.Name, err)
	}

	fmt.Println(StyleTitle.Render(s.Name))
	fmt.Println(placementsTable(res.Placements, -1))
	for _, q := range res.Clearances {
		printKeyValue("clear "+q.Clear.String(), formatLength(q.Edge))
	}
	if opts.showBands {
		fmt.Println(bandsTable(res.Bands))
	}
	printStats(res.Stats)

	if opts.output != "" {
		if err := scenario.WriteResultFile(res, opts.output); err != nil {
			return fmt.Errorf("write output %s: %w", opts.output, err)
		}
		printFile(opts.output)
	}

	if !res.OK() {
		for _, m := range res.Mismatches {
			printWarning("%s", m)
		}
		return res.Err()
	}
	printSuccess("Placed %d floats", len(res.Placements))
	printNewline()
	printNextStep("Step through", appName+" inspect "+path)
	return nil
}

// completeScenarioFiles completes scenario file names.
func completeScenarioFiles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"toml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}
