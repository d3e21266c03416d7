package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"layout-inspector/internal/diagnostic"
	"layout-inspector/internal/logging"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Compiler is the compiler whose size rules are used.
const Compiler = "gc"

// ErrUnknownArch is returned when go/types has no sizes for an architecture.
var ErrUnknownArch = errors.New("unknown architecture")

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithArch sets the target GOARCH. The default is the host architecture.
func WithArch(arch string) Option {
	return func(a *Analyzer) {
		a.arch = arch
	}
}

// WithExportedOnly limits the analysis to exported struct types.
func WithExportedOnly(v bool) Option {
	return func(a *Analyzer) {
		a.exportedOnly = v
	}
}

// Analyzer loads Go packages and indexes their structs.
type Analyzer struct {
	arch         string
	exportedOnly bool
	index        *Index
	diags        diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		arch:  runtime.GOARCH,
		index: NewIndex(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Arch returns the target architecture.
func (a *Analyzer) Arch() string {
	return a.arch
}

// Index returns the structs loaded so far.
func (a *Analyzer) Index() *Index {
	return a.index
}

// Diagnostics returns the warnings and errors collected so far.
func (a *Analyzer) Diagnostics() *diagnostic.Diagnostics {
	return &a.diags
}

// LoadPackages loads the specified packages and indexes their structs.
// Patterns are standard Go package patterns (e.g., "./records", "layout-inspector/records").
func (a *Analyzer) LoadPackages(patterns ...string) (*Index, error) {
	sizes := types.SizesFor(Compiler, a.arch)
	if sizes == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArch, a.arch)
	}

	cfg := &packages.Config{
		Mode: LoadMode,
	}
	if a.arch != runtime.GOARCH {
		// Build constraints must select the files of the target architecture.
		cfg.Env = append(os.Environ(), "GOARCH="+a.arch, "CGO_ENABLED=0")
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg, sizes)
	}

	return a.index, nil
}

// processPackage extracts structs from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package, sizes types.Sizes) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		// Only process type names (not variables, constants, functions)
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		if a.exportedOnly && !typeName.Exported() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		info := &StructInfo{
			ID:       id,
			Exported: typeName.Exported(),
		}

		if named, ok := typeName.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			info.Skipped = "generic type"
			a.diags.AddInfo("generic_struct",
				"generic structs have no layout until instantiated", id.Short(), "")
		} else {
			a.analyzeStruct(st, pkg.Types, sizes, info)
		}

		a.index.Structs[id] = info
		pkgInfo.Structs = append(pkgInfo.Structs, id)
	}

	a.index.Packages[pkg.PkgPath] = pkgInfo

	logging.Logger().Debug("loaded package",
		zap.String("path", pkg.PkgPath),
		zap.String("arch", a.arch),
		zap.Int("structs", len(pkgInfo.Structs)))
}

// analyzeStruct records the compiler's view of every field of st.
func (a *Analyzer) analyzeStruct(st *types.Struct, pkg *types.Package, sizes types.Sizes, info *StructInfo) {
	vars := make([]*types.Var, st.NumFields())
	for i := range vars {
		vars[i] = st.Field(i)
	}

	offsets := sizes.Offsetsof(vars)
	info.Size = uint64(sizes.Sizeof(st))
	info.Align = uint64(sizes.Alignof(st))

	qualifier := types.RelativeTo(pkg)

	for i, field := range vars {
		name := field.Name()
		if name == "_" {
			// '#' keeps the name distinct from any identifier
			name = fmt.Sprintf("_#%d", i)
		}

		fi := FieldInfo{
			Name:     name,
			Type:     types.TypeString(field.Type(), qualifier),
			Exported: field.Exported(),
			Embedded: field.Anonymous(),
			Index:    i,
			Size:     uint64(sizes.Sizeof(field.Type())),
			Align:    uint64(sizes.Alignof(field.Type())),
			Offset:   uint64(offsets[i]),
		}
		info.Fields = append(info.Fields, fi)

		if fi.Size == 0 && info.Skipped == "" {
			info.Skipped = "zero-size field " + name
			a.diags.AddWarning("zero_size_field",
				fmt.Sprintf("field %s of type %s has size zero; struct skipped", name, fi.Type),
				info.ID.Short(), name)
		}
	}

	if len(vars) == 0 {
		info.Skipped = "no fields"
		a.diags.AddWarning("empty_struct", "struct has no fields; skipped", info.ID.Short(), "")
	}
}
