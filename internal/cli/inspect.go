package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layout-inspector/internal/logging"
	"layout-inspector/internal/schema"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "inspect FILE [RECORD...]",
		Short: "Show the layout of records from a YAML schema",
		Long: `Load a YAML record schema, validate it and print the size of each record
and the offset of each field. With RECORD arguments only those records are shown,
in the order given.

The schema's own data model is used unless --model is given explicitly.
With --watch the layouts are printed again whenever the file changes.`,
		Example: `  # Show every record
  layout-inspector inspect records.yaml

  # Show two records as a table, sized for 32-bit targets
  layout-inspector inspect records.yaml Foo Bar -o table --model ilp32`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := inspectFile(cmd, args[0], args[1:])
			if !watch {
				return err
			}

			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return watchFile(ctx, args[0], watchDebounce, func() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				if err := inspectFile(cmd, args[0], args[1:]); err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Print the layouts again whenever the schema file changes")

	return cmd
}

// inspectFile loads the schema at path and renders the named records.
func inspectFile(cmd *cobra.Command, path string, names []string) error {
	f, err := schema.LoadFile(path)
	if err != nil {
		return err
	}

	cfg := GetConfig(cmd.Context())
	if f.Model == "" || cmd.Flags().Changed("model") {
		f.Model = cfg.Model
	}

	logging.Logger().Debug("schema loaded",
		zap.String("path", path),
		zap.String("model", f.Model),
		zap.Int("records", len(f.Records)))

	return renderSchema(cmd, f, names)
}

// renderSchema validates f, resolves it and renders the named records.
func renderSchema(cmd *cobra.Command, f *schema.File, names []string) error {
	r := GetRenderer(cmd.Context())

	diags := schema.Validate(f)
	r.Diagnostics(diags)

	if err := diags.Error(); err != nil {
		return err
	}

	resolved, err := schema.Resolve(f)
	if err != nil {
		return err
	}

	results, err := resolved.Select(names...)
	if err != nil {
		return err
	}

	return r.Layouts(results)
}
