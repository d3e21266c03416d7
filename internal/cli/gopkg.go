package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layout-inspector/internal/analyze"
	"layout-inspector/internal/logging"
)

// NewGoCommand creates the go command.
func NewGoCommand() *cobra.Command {
	var typeNames []string

	cmd := &cobra.Command{
		Use:   "go PATTERN...",
		Short: "Show the layout of the structs in Go packages",
		Long: `Load Go packages and print the layout of every named struct they declare,
using the sizes of the gc compiler for --arch. Every computed offset is checked
against the compiler; a disagreement is reported as an error.

Empty structs and structs with a zero-size field are skipped with a warning.`,
		Example: `  layout-inspector go ./records
  layout-inspector go ./records --type Foo --type Bar --arch 386`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			r := GetRenderer(cmd.Context())

			analyzer := analyze.NewAnalyzer(
				analyze.WithArch(cfg.Arch),
				analyze.WithExportedOnly(cfg.ExportedOnly),
			)

			index, err := analyzer.LoadPackages(args...)
			if err != nil {
				return err
			}

			logging.Logger().Debug("packages analyzed",
				zap.Strings("patterns", args),
				zap.Int("structs", len(index.Structs)))

			results, err := analyzer.Layouts(cmd.Context(), typeNames...)
			if err != nil {
				return err
			}

			if err := r.Layouts(results); err != nil {
				return err
			}

			diags := analyzer.Diagnostics()
			r.Diagnostics(diags)

			return diags.Error()
		},
	}

	cmd.Flags().StringSliceVarP(&typeNames, "type", "t", nil, "Only show these structs (repeatable)")

	return cmd
}
