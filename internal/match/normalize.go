package match

import (
	"strings"
)

// NormalizeIdent normalizes a type or record name for fuzzy matching:
// lowercase, drop a trailing C "_t" suffix, then strip separators.
//
//	"uint32_t"      -> "uint32"
//	"Unsigned Long" -> "unsignedlong"
//	"order_item"    -> "orderitem"
func NormalizeIdent(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "_t")

	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '\t':
			return -1
		default:
			return r
		}
	}, s)
}
