package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbanner/pkg/config"
)

// completionCommand creates the completion command. Besides subcommands and
// flags, the generated scripts complete --profile from the loaded config
// and --bg from the theme registry.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for svgbanner.

Completions cover subcommands, flags, profile names from the active config
file and background theme ids (svgbanner render --bg <TAB>).

Bash:
  $ source <(svgbanner completion bash)

Zsh:
  $ svgbanner completion zsh > "${fpath[1]}/_svgbanner"

Fish:
  $ svgbanner completion fish > ~/.config/fish/completions/svgbanner.fish

PowerShell:
  PS> svgbanner completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.Out, true)
			case "zsh":
				return root.GenZshCompletion(c.Out)
			case "fish":
				return root.GenFishCompletion(c.Out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(c.Out)
			}
		},
	}

	return cmd
}

// completeProfiles suggests profile names from the loaded config.
func (c *CLI) completeProfiles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return cfg.Names(), cobra.ShellCompDirectiveNoFileComp
}

// completeThemes suggests theme ids and aliases, each described by its
// canonical id.
func completeThemes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, info := range themeRegistry().Themes() {
		out = append(out, info.ID+"\tbackground theme")
		for _, alias := range info.Aliases {
			out = append(out, alias+"\talias of "+info.ID)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeAlign suggests text alignments.
func completeAlign(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"left", "center", "right"}, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats suggests output formats.
func completeFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{
		config.FormatSVG,
		config.FormatPNG + "\tneeds a raster profile",
		config.FormatWebP + "\tneeds a raster profile",
	}, cobra.ShellCompDirectiveNoFileComp
}
