package analyze

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"layout-inspector/internal/common"
	"layout-inspector/internal/layout"
	"layout-inspector/internal/logging"
	"layout-inspector/internal/match"
)

// Select returns the named structs, or every struct when no names are given.
// Names may be bare ("Foo"), short ("records.Foo") or fully qualified.
func (a *Analyzer) Select(names ...string) ([]*StructInfo, error) {
	if common.IsEmpty(names) {
		return a.index.Sorted(), nil
	}

	out := make([]*StructInfo, 0, len(names))

	for _, name := range names {
		found := a.index.Find(name)

		switch len(found) {
		case 0:
			if s := match.Suggest(name, a.index.BareNames(), 1); len(s) > 0 {
				return nil, fmt.Errorf("struct %q not found (did you mean %s?)", name, s[0])
			}

			return nil, fmt.Errorf("struct %q not found", name)
		case 1:
			s, _ := common.First(found)
			out = append(out, s)
		default:
			return nil, fmt.Errorf("struct %q is ambiguous: qualify it with its package (%s or %s)",
				name, found[0].ID.Short(), found[1].ID.Short())
		}
	}

	return out, nil
}

// Layouts computes the layout of the selected structs and checks every offset
// and total size against the compiler. Structs without a computable layout are
// left out; mismatches are reported as diagnostic errors.
func (a *Analyzer) Layouts(ctx context.Context, names ...string) ([]*layout.Result, error) {
	selected, err := a.Select(names...)
	if err != nil {
		return nil, err
	}

	structs := make([]*StructInfo, 0, len(selected))
	specs := make([]layout.RecordSpec, 0, len(selected))

	for _, s := range selected {
		if s.Skipped != "" {
			logging.Logger().Debug("skipping struct",
				zap.Stringer("type", s.ID),
				zap.String("reason", s.Skipped))

			continue
		}

		structs = append(structs, s)
		specs = append(specs, s.Record())
	}

	results, err := layout.ComputeAll(ctx, specs)
	if err != nil {
		return nil, err
	}

	for i, res := range results {
		a.crossCheck(structs[i], res)
	}

	return results, nil
}

// crossCheck compares a computed layout with the compiler's.
func (a *Analyzer) crossCheck(s *StructInfo, res *layout.Result) {
	for i, f := range res.Fields {
		want := s.Fields[i].Offset
		if f.Offset != want {
			a.diags.AddError("layout_mismatch",
				fmt.Sprintf("computed offset %d, compiler reports %d on %s", f.Offset, want, a.arch),
				res.Record, f.Name)
		}
	}

	if res.Size != s.Size {
		a.diags.AddError("layout_mismatch",
			fmt.Sprintf("computed size %d, compiler reports %d on %s", res.Size, s.Size, a.arch),
			res.Record, "")
	}
}
