package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"layout-inspector/internal/layout"
	"layout-inspector/internal/render"
	"layout-inspector/internal/schema"
)

// NewOptimizeCommand creates the optimize command.
func NewOptimizeCommand() *cobra.Command {
	var writePath string

	cmd := &cobra.Command{
		Use:   "optimize FILE [RECORD...]",
		Short: "Suggest a field order that needs less padding",
		Long: `Reorder the fields of each record by descending alignment, then descending
size, and show how many bytes the new order saves. With --write the schema is
saved with the suggested order.`,
		Example: `  layout-inspector optimize records.yaml
  layout-inspector optimize records.yaml Foo --write records.optimized.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := schema.LoadFile(args[0])
			if err != nil {
				return err
			}

			cfg := GetConfig(cmd.Context())
			if f.Model == "" || cmd.Flags().Changed("model") {
				f.Model = cfg.Model
			}

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

			specs, err := resolved.SelectSpecs(args[1:]...)
			if err != nil {
				return err
			}

			cmps, err := optimizeAll(resolved, specs)
			if err != nil {
				return err
			}

			if err := r.Comparisons(cmps); err != nil {
				return err
			}

			if writePath == "" {
				return nil
			}

			for _, c := range cmps {
				if i := f.FindRecord(c.After.Record); i >= 0 {
					reorder(&f.Records[i], c.After)
				}
			}

			return schema.WriteFile(f, writePath)
		},
	}

	cmd.Flags().StringVarP(&writePath, "write", "w", "", "Write the schema with optimized field order to this file")

	return cmd
}

func optimizeAll(resolved *schema.Resolved, specs []layout.RecordSpec) ([]render.Comparison, error) {
	cmps := make([]render.Comparison, 0, len(specs))

	for _, spec := range specs {
		before, ok := resolved.Lookup(spec.Name)
		if !ok {
			return nil, fmt.Errorf("record %q not resolved", spec.Name)
		}

		after, err := layout.Compute(layout.Optimize(spec))
		if err != nil {
			return nil, err
		}

		cmps = append(cmps, render.Comparison{Before: before, After: after})
	}

	return cmps, nil
}

// reorder puts the fields of rec in the order of res.
func reorder(rec *schema.Record, res *layout.Result) {
	byName := make(map[string]schema.Field, len(rec.Fields))
	for _, f := range rec.Fields {
		byName[f.Name] = f
	}

	fields := make([]schema.Field, 0, len(rec.Fields))
	for _, fl := range res.Fields {
		fields = append(fields, byName[fl.Name])
	}

	rec.Fields = fields
}
