// Package analyze loads Go packages and extracts the layout of their structs.
//
// It uses golang.org/x/tools/go/packages and go/types to describe every named
// struct in package scope as a layout.RecordSpec, then checks the computed
// layout against the sizes the gc compiler reports for the target GOARCH.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: fields with compiler offsets, size and alignment
//   - Index: every struct found in the loaded packages
package analyze
