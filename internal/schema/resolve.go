package schema

import (
	"fmt"
	"math/bits"

	"layout-inspector/internal/layout"
	"layout-inspector/internal/match"
	"layout-inspector/primitive"
)

// Resolved holds the record specs and layouts of a schema, in declaration order.
type Resolved struct {
	Model   primitive.DataModel
	Specs   []layout.RecordSpec
	Results []*layout.Result
}

// Resolve validates the schema and computes the layout of every record.
//
// Records are resolved in dependency order so a field of record type gets the
// inner record's size and alignment. Array fields take count times the element
// size with the element alignment.
func Resolve(f *File) (*Resolved, error) {
	diags := Validate(f)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	model, err := primitive.ParseDataModel(f.Model)
	if err != nil {
		return nil, err
	}

	order, _, err := topoSort(len(f.Records), func(i int) []int { return recordDeps(f, i) })
	if err != nil {
		return nil, fmt.Errorf("ordering records: %w", err)
	}

	out := &Resolved{
		Model:   model,
		Specs:   make([]layout.RecordSpec, len(f.Records)),
		Results: make([]*layout.Result, len(f.Records)),
	}

	for _, i := range order {
		spec, err := out.recordSpec(f, &f.Records[i])
		if err != nil {
			return nil, err
		}

		res, err := layout.Compute(spec)
		if err != nil {
			return nil, fmt.Errorf("computing layout of %s: %w", spec.Name, err)
		}

		out.Specs[i] = spec
		out.Results[i] = res
	}

	return out, nil
}

// recordSpec converts a schema record into a layout spec. Every record it
// references must already be resolved.
func (r *Resolved) recordSpec(f *File, rec *Record) (layout.RecordSpec, error) {
	spec := layout.RecordSpec{
		Name:   rec.Name,
		Fields: make([]layout.FieldSpec, 0, len(rec.Fields)),
	}

	for i := range rec.Fields {
		fd := &rec.Fields[i]

		var size, align uint64

		switch {
		case fd.IsExplicit():
			size, align = fd.Size, fd.Align

		default:
			if k, ok := primitive.FromName(fd.Type); ok {
				size, align = k.Size(r.Model), k.Align(r.Model)
				break
			}

			j := f.FindRecord(fd.Type)
			if j < 0 || r.Results[j] == nil {
				return layout.RecordSpec{}, fmt.Errorf("record %s, field %s: type %q is not resolved", rec.Name, fd.Name, fd.Type)
			}

			size, align = r.Results[j].Size, r.Results[j].Align
		}

		hi, total := bits.Mul64(size, uint64(fd.Elements()))
		if hi != 0 {
			return layout.RecordSpec{}, fmt.Errorf("record %s, field %s: array size overflows", rec.Name, fd.Name)
		}

		spec.Fields = append(spec.Fields, layout.FieldSpec{
			Name:  fd.Name,
			Size:  total,
			Align: align,
		})
	}

	return spec, nil
}

// Lookup returns the layout of the named record.
func (r *Resolved) Lookup(name string) (*layout.Result, bool) {
	for _, res := range r.Results {
		if res.Record == name {
			return res, true
		}
	}

	return nil, false
}

// Select returns the layouts of the named records in the order given, or all
// layouts when no names are given.
func (r *Resolved) Select(names ...string) ([]*layout.Result, error) {
	if len(names) == 0 {
		return r.Results, nil
	}

	known := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		known = append(known, res.Record)
	}

	out := make([]*layout.Result, 0, len(names))

	for _, name := range names {
		res, ok := r.Lookup(name)
		if !ok {
			if s := match.Suggest(name, known, 1); len(s) > 0 {
				return nil, fmt.Errorf("record %q not found (did you mean %s?)", name, s[0])
			}

			return nil, fmt.Errorf("record %q not found", name)
		}

		out = append(out, res)
	}

	return out, nil
}

// SelectSpecs is Select for the record specs.
func (r *Resolved) SelectSpecs(names ...string) ([]layout.RecordSpec, error) {
	results, err := r.Select(names...)
	if err != nil {
		return nil, err
	}

	specs := make([]layout.RecordSpec, 0, len(results))

	for _, res := range results {
		for _, spec := range r.Specs {
			if spec.Name == res.Record {
				specs = append(specs, spec)
				break
			}
		}
	}

	return specs, nil
}
