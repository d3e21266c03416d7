package layout

// FieldSpec describes a single field of a record.
type FieldSpec struct {
	Name  string `json:"name" yaml:"name"`
	Size  uint64 `json:"size" yaml:"size"`   // size in bytes, must be > 0
	Align uint64 `json:"align" yaml:"align"` // alignment in bytes, a power of two
}

// RecordSpec is an ordered sequence of fields. Field order affects the layout.
type RecordSpec struct {
	Name   string      `json:"name" yaml:"name"`
	Fields []FieldSpec `json:"fields" yaml:"fields"`
}

// DataSize returns the sum of all field sizes, ignoring padding.
func (r RecordSpec) DataSize() uint64 {
	var total uint64
	for _, f := range r.Fields {
		total += f.Size
	}

	return total
}

// FieldLayout is the computed placement of one field.
type FieldLayout struct {
	Name    string `json:"name" yaml:"name"`
	Offset  uint64 `json:"offset" yaml:"offset"`
	Size    uint64 `json:"size" yaml:"size"`
	Align   uint64 `json:"align" yaml:"align"`
	Padding uint64 `json:"padding" yaml:"padding"` // internal padding inserted before this field
}

// End returns the offset one past the last byte of the field.
func (f FieldLayout) End() uint64 {
	return f.Offset + f.Size
}

// Result is the computed layout of a record.
type Result struct {
	Record          string        `json:"record" yaml:"record"`
	Size            uint64        `json:"size" yaml:"size"`
	Align           uint64        `json:"align" yaml:"align"`
	Fields          []FieldLayout `json:"fields" yaml:"fields"` // in declared order
	TrailingPadding uint64        `json:"trailing_padding" yaml:"trailing_padding"`
}

// Offsets returns the field name to offset mapping.
// Use Fields when declaration order matters.
func (r *Result) Offsets() map[string]uint64 {
	offsets := make(map[string]uint64, len(r.Fields))
	for _, f := range r.Fields {
		offsets[f.Name] = f.Offset
	}

	return offsets
}

// Offset returns the offset of the named field.
func (r *Result) Offset(name string) (uint64, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Offset, true
		}
	}

	return 0, false
}

// End returns the offset one past the last field, before trailing padding.
func (r *Result) End() uint64 {
	return r.Size - r.TrailingPadding
}

// DataSize returns the number of bytes occupied by fields.
func (r *Result) DataSize() uint64 {
	var total uint64
	for _, f := range r.Fields {
		total += f.Size
	}

	return total
}

// PaddingTotal returns internal plus trailing padding.
func (r *Result) PaddingTotal() uint64 {
	return r.Size - r.DataSize()
}
