package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotmark/pkg/render"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for dotmark.

Completions know the layout engines and which files each command takes:

  $ dotmark graph -e <TAB>      # dot  circo
  $ dotmark graph <TAB>         # *.dot and *.gv files
  $ dotmark render <TAB>        # *.md and *.markdown files

To load completions:

Bash:
  $ source <(dotmark completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ dotmark completion bash > /etc/bash_completion.d/dotmark
  # macOS:
  $ dotmark completion bash > $(brew --prefix)/etc/bash_completion.d/dotmark

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ dotmark completion zsh > "${fpath[1]}/_dotmark"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ dotmark completion fish | source

  # To load completions for each session, execute once:
  $ dotmark completion fish > ~/.config/fish/completions/dotmark.fish

PowerShell:
  PS> dotmark completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> dotmark completion powershell > dotmark.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// engineCompletion completes --engine with the supported layout engines.
func engineCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(render.Engines()))
	for _, e := range render.Engines() {
		names = append(names, e.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// fileCompletion limits positional completion to files with one of exts.
func fileCompletion(exts ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return exts, cobra.ShellCompDirectiveFilterFileExt
	}
}
