package layout

import (
	"cmp"
	"slices"
)

// Optimize returns a copy of rec with fields ordered by descending alignment,
// then descending size. Fields that compare equal keep their declared order.
//
// When every field size is a multiple of its alignment, which holds for
// primitives, arrays and nested records, this ordering needs no internal
// padding. Explicit sizes can break that, so if the reordered record would be
// larger the declared order is returned unchanged.
func Optimize(rec RecordSpec) RecordSpec {
	fields := slices.Clone(rec.Fields)
	slices.SortStableFunc(fields, func(a, b FieldSpec) int {
		if c := cmp.Compare(b.Align, a.Align); c != 0 {
			return c
		}

		return cmp.Compare(b.Size, a.Size)
	})

	sorted := RecordSpec{Name: rec.Name, Fields: fields}

	before, err := Compute(rec)
	if err != nil {
		return sorted
	}

	if after, err := Compute(sorted); err == nil && after.Size > before.Size {
		return RecordSpec{Name: rec.Name, Fields: slices.Clone(rec.Fields)}
	}

	return sorted
}

// Savings compares a layout with its optimized counterpart.
type Savings struct {
	Record string `json:"record" yaml:"record"`
	Before uint64 `json:"before" yaml:"before"`
	After  uint64 `json:"after" yaml:"after"`
}

// Bytes returns how many bytes the reordering saves.
func (s Savings) Bytes() uint64 {
	if s.After >= s.Before {
		return 0
	}

	return s.Before - s.After
}

// Compare reports the size difference between two layouts of the same record.
func Compare(before, after *Result) Savings {
	return Savings{
		Record: before.Record,
		Before: before.Size,
		After:  after.Size,
	}
}
