package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
// Scenario arguments complete to .toml and .json files.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for floatzone.

To load completions:

Bash:
  $ source <(floatzone completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ floatzone completion bash > /etc/bash_completion.d/floatzone
  # macOS:
  $ floatzone completion bash > $(brew --prefix)/etc/bash_completion.d/floatzone

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ floatzone completion zsh > "${fpath[1]}/_floatzone"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ floatzone completion fish | source

  # To load completions for each session, execute once:
  $ floatzone completion fish > ~/.config/fish/completions/floatzone.fish

PowerShell:
  PS> floatzone completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> floatzone completion powershell > floatzone.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
