package analyze

import (
	"cmp"
	"slices"

	"layout-inspector/internal/common"
	"layout-inspector/internal/layout"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "layout-inspector/records"
	Name    string // e.g., "Foo"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the name qualified by the last element of the package path,
// the way it would be written in source ("records.Foo").
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// FieldInfo describes a struct field as the compiler lays it out.
type FieldInfo struct {
	Name     string // Go field name, "_#<index>" for blank fields
	Type     string // Type expression relative to the declaring package
	Exported bool   // Whether the field is exported
	Embedded bool   // Whether the field is embedded (anonymous)
	Index    int    // Field index in the struct
	Size     uint64 // types.Sizes.Sizeof
	Align    uint64 // types.Sizes.Alignof
	Offset   uint64 // types.Sizes.Offsetsof
}

// StructInfo describes a named struct type.
type StructInfo struct {
	ID       TypeID
	Exported bool
	Fields   []FieldInfo
	Size     uint64 // Compiler size of the whole struct
	Align    uint64 // Compiler alignment of the whole struct
	Skipped  string // Why the struct has no computable layout, empty if it has one
}

// Record returns the struct as a layout input, fields in declaration order.
func (s *StructInfo) Record() layout.RecordSpec {
	rec := layout.RecordSpec{
		Name:   s.ID.Short(),
		Fields: make([]layout.FieldSpec, 0, len(s.Fields)),
	}

	for _, f := range s.Fields {
		rec.Fields = append(rec.Fields, layout.FieldSpec{
			Name:  f.Name,
			Size:  f.Size,
			Align: f.Align,
		})
	}

	return rec
}

// PackageInfo describes a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Structs []TypeID // Structs declared at package scope, sorted by name
}

// Index holds all structs from the loaded packages.
type Index struct {
	// Structs maps TypeID to StructInfo for all named structs.
	Structs map[TypeID]*StructInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		Structs:  make(map[TypeID]*StructInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// Get returns the StructInfo for the given TypeID, or nil if not found.
func (x *Index) Get(id TypeID) *StructInfo {
	return x.Structs[id]
}

// Sorted returns every struct ordered by package path, then name.
func (x *Index) Sorted() []*StructInfo {
	out := make([]*StructInfo, 0, len(x.Structs))
	for _, s := range x.Structs {
		out = append(out, s)
	}

	slices.SortFunc(out, func(a, b *StructInfo) int {
		return cmp.Or(
			cmp.Compare(a.ID.PkgPath, b.ID.PkgPath),
			cmp.Compare(a.ID.Name, b.ID.Name),
		)
	})

	return out
}

// Find returns the structs whose name matches name. A name qualified with a
// package alias ("records.Foo") matches only that package.
func (x *Index) Find(name string) []*StructInfo {
	var out []*StructInfo

	for _, s := range x.Sorted() {
		if s.ID.Name == name || s.ID.Short() == name || s.ID.String() == name {
			out = append(out, s)
		}
	}

	return out
}

// Names returns the short names of every struct, for suggestions.
func (x *Index) Names() []string {
	sorted := x.Sorted()
	out := make([]string, 0, len(sorted))

	for _, s := range sorted {
		out = append(out, s.ID.Short())
	}

	return out
}

// BareNames returns the unqualified struct names.
func (x *Index) BareNames() []string {
	sorted := x.Sorted()
	out := make([]string, 0, len(sorted))

	for _, s := range sorted {
		out = append(out, s.ID.Name)
	}

	return out
}
