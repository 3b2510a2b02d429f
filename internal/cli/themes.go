package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbanner/pkg/background"
)

// themesCommand creates the themes command.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List background themes and their aliases",
		Long: `List the background themes accepted by the bg parameter.

Unknown theme names render the fallback theme, marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := themeRegistry()
			for _, info := range reg.Themes() {
				printTheme(c.Out, info.ID, info.Aliases, info.ID == reg.Fallback())
			}
			return nil
		},
	}
}

// themeRegistry returns the registry the handler renders with.
func themeRegistry() *background.Registry {
	return background.Default()
}
