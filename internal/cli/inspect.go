package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floatzone/pkg/scenario"
)

// inspectCommand creates the inspect command, an interactive view of the
// band map after every float of a scenario.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "inspect [scenario]",
		Short:             "Step through a scenario float by float",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScenarioFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	runner := c.newRunner()
	runner.KeepSteps = true
	res, err := runner.Run(ctx, s)
	if err != nil {
		return fmt.Errorf("run %s: %w", s.Name, err)
	}

	if _, err := tea.NewProgram(NewInspectModel(res), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	return nil
}
