package schema

// File is the root of a record schema document.
type File struct {
	// Version of the schema format. Defaults to "1".
	Version string `yaml:"version"`
	// Model names the data model used for primitive sizes (lp64, ilp32, llp64).
	Model string `yaml:"model,omitempty"`
	// Records in declaration order.
	Records []Record `yaml:"records"`
}

// Record describes one record type.
type Record struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Fields      []Field `yaml:"fields"`
}

// Field describes one field. Exactly one of Type or Size must be set.
type Field struct {
	Name string `yaml:"name"`
	// Type is a primitive type name or the name of another record.
	Type string `yaml:"type,omitempty"`
	// Size and Align give an explicit layout for opaque fields.
	Size  uint64 `yaml:"size,omitempty"`
	Align uint64 `yaml:"align,omitempty"`
	// Count makes the field a fixed-size array. Nil means a single element.
	Count *int `yaml:"count,omitempty"`
}

// Elements returns the number of array elements, 1 for scalar fields.
func (f *Field) Elements() int {
	if f.Count == nil {
		return 1
	}

	return *f.Count
}

// IsExplicit reports whether the field carries its own size instead of a type.
func (f *Field) IsExplicit() bool {
	return f.Type == "" && f.Size > 0
}

// RecordNames returns the record names in declaration order.
func (f *File) RecordNames() []string {
	names := make([]string, 0, len(f.Records))
	for i := range f.Records {
		names = append(names, f.Records[i].Name)
	}

	return names
}

// FindRecord returns the index of the named record, or -1.
func (f *File) FindRecord(name string) int {
	for i := range f.Records {
		if f.Records[i].Name == name {
			return i
		}
	}

	return -1
}
