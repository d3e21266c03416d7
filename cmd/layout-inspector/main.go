// Package main provides the CLI entrypoint for layout-inspector.
//
// layout-inspector computes record sizes, field offsets and padding:
//   - from a YAML record schema (inspect, optimize)
//   - from the built-in C example records (examples)
//   - from the structs of Go packages, checked against the compiler (go)
package main

import (
	"os"

	"layout-inspector/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
