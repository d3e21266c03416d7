// Package render formats layouts, comparisons and diagnostics for the terminal.
package render

import (
	"fmt"
	"strings"

	"layout-inspector/internal/common"
)

// Mode selects the output format.
type Mode int

const (
	ModeText Mode = iota
	ModeTable
	ModeJSON
	ModeYAML
)

// String returns the mode name used by the --output flag.
func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeTable:
		return "table"
	case ModeJSON:
		return "json"
	case ModeYAML:
		return "yaml"
	default:
		return common.UnknownStr
	}
}

// ModeNames lists the accepted --output values.
func ModeNames() []string {
	return []string{ModeText.String(), ModeTable.String(), ModeJSON.String(), ModeYAML.String()}
}

// ParseMode parses an output mode name. The empty string yields ModeText.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return ModeText, nil
	case "table":
		return ModeTable, nil
	case "json":
		return ModeJSON, nil
	case "yaml", "yml":
		return ModeYAML, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want %s)", s, strings.Join(ModeNames(), ", "))
	}
}
