package schema

import (
	"fmt"
	"slices"
	"strings"

	"layout-inspector/internal/diagnostic"
	"layout-inspector/internal/layout"
	"layout-inspector/internal/match"
	"layout-inspector/primitive"
)

// maxSuggestions caps the "did you mean" list of unknown type diagnostics.
const maxSuggestions = 3

// Validate checks a schema for structural problems. It does not compute layouts.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported schema version %q", f.Version), "", "")
	}

	if _, err := primitive.ParseDataModel(f.Model); err != nil {
		res.AddError("unknown_model", err.Error(), "", "", match.Suggest(f.Model, primitive.DataModelNames(), 1)...)
	}

	if len(f.Records) == 0 {
		res.AddWarning("no_records", "schema defines no records", "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Records {
		rec := &f.Records[i]

		switch _, dup := seen[rec.Name]; {
		case rec.Name == "":
			res.AddError("record_without_name", fmt.Sprintf("record #%d has no name", i), "", "")
		case dup:
			res.AddError("duplicate_record", fmt.Sprintf("duplicate record %q", rec.Name), rec.Name, "")
		default:
			if _, ok := primitive.FromName(rec.Name); ok {
				res.AddError("record_shadows_primitive",
					fmt.Sprintf("record name %q is a primitive type name", rec.Name), rec.Name, "")
			}
		}

		seen[rec.Name] = struct{}{}

		validateRecord(res, f, rec)
	}

	validateCycles(res, f)

	return res
}

func validateRecord(res *diagnostic.Diagnostics, f *File, rec *Record) {
	if len(rec.Fields) == 0 {
		res.AddError("no_fields", "record has no fields", rec.Name, "")
		return
	}

	seen := map[string]struct{}{}

	for i := range rec.Fields {
		fd := &rec.Fields[i]

		if fd.Name == "" {
			res.AddError("field_without_name", fmt.Sprintf("field #%d has no name", i), rec.Name, "")
		} else if _, dup := seen[fd.Name]; dup {
			res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", fd.Name), rec.Name, fd.Name)
		}

		seen[fd.Name] = struct{}{}

		validateField(res, f, rec, fd)
	}
}

func validateField(res *diagnostic.Diagnostics, f *File, rec *Record, fd *Field) {
	switch {
	case fd.Type != "" && fd.Size > 0:
		res.AddError("ambiguous_field", "field sets both type and size", rec.Name, fd.Name)

	case fd.Type == "" && fd.Size == 0:
		res.AddError("missing_type", "field needs a type or a non-zero size", rec.Name, fd.Name)

	case fd.Type != "":
		if _, ok := primitive.FromName(fd.Type); ok {
			break
		}

		if f.FindRecord(fd.Type) >= 0 {
			if fd.Type == rec.Name {
				res.AddError("self_reference", "record contains itself", rec.Name, fd.Name)
			}

			break
		}

		candidates := append(primitive.Names(), f.RecordNames()...)
		res.AddError("unknown_type", fmt.Sprintf("unknown type %q", fd.Type), rec.Name, fd.Name,
			match.Suggest(fd.Type, candidates, maxSuggestions)...)

	default:
		if !layout.IsPowerOfTwo(fd.Align) {
			res.AddError("invalid_align", fmt.Sprintf("alignment %d is not a power of two", fd.Align), rec.Name, fd.Name)
		} else if fd.Size%fd.Align != 0 && fd.Elements() > 1 {
			res.AddWarning("unaligned_array",
				fmt.Sprintf("array element size %d is not a multiple of alignment %d", fd.Size, fd.Align), rec.Name, fd.Name)
		}
	}

	if fd.Elements() < 1 {
		res.AddError("invalid_count", fmt.Sprintf("array count must be at least 1, got %d", fd.Elements()), rec.Name, fd.Name)
	}
}

// recordDeps returns the indices of records referenced by record i.
func recordDeps(f *File, i int) []int {
	var deps []int

	for _, fd := range f.Records[i].Fields {
		if fd.Type == "" || fd.Type == f.Records[i].Name {
			continue
		}

		if j := f.FindRecord(fd.Type); j >= 0 && !slices.Contains(deps, j) {
			deps = append(deps, j)
		}
	}

	return deps
}

func validateCycles(res *diagnostic.Diagnostics, f *File) {
	_, stuck, err := topoSort(len(f.Records), func(i int) []int { return recordDeps(f, i) })
	if err == nil || len(stuck) == 0 {
		return
	}

	names := make([]string, 0, len(stuck))
	for _, i := range stuck {
		names = append(names, f.Records[i].Name)
	}

	res.AddError("reference_cycle",
		fmt.Sprintf("records reference each other in a cycle: %s", strings.Join(names, ", ")), names[0], "")
}
