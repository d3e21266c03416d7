package cli

import (
	"github.com/spf13/cobra"

	"layout-inspector/internal/catalog"
)

// NewExamplesCommand creates the examples command.
func NewExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples [RECORD...]",
		Short: "Show the layout of the built-in example records",
		Long: `Print the layout of the example records shipped with layout-inspector:
CFoo, Foo, Bar, Billy and Pair.`,
		Example: `  layout-inspector examples
  layout-inspector examples Foo Bar --model llp64`,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.Load(GetConfig(cmd.Context()).Model)
			if err != nil {
				return err
			}

			return renderSchema(cmd, f, args)
		},
	}
}
