// Package catalog ships the example records as an embedded schema.
package catalog

import (
	_ "embed"
	"fmt"

	"layout-inspector/internal/schema"
	"layout-inspector/primitive"
)

//go:embed records.yaml
var recordsYAML []byte

// Load parses the embedded schema. A non-empty model overrides the schema's own.
func Load(model string) (*schema.File, error) {
	f, err := schema.Parse(recordsYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}

	if model != "" {
		m, err := primitive.ParseDataModel(model)
		if err != nil {
			return nil, err
		}

		f.Model = m.String()
	}

	return f, nil
}

// Resolve loads and resolves the catalog under the given data model.
func Resolve(model string) (*schema.Resolved, error) {
	f, err := Load(model)
	if err != nil {
		return nil, err
	}

	return schema.Resolve(f)
}

// Names lists the catalog records in declaration order.
func Names() []string {
	f, err := Load("")
	if err != nil {
		return nil
	}

	return f.RecordNames()
}
