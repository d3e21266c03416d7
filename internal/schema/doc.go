// Package schema handles YAML record schema files.
//
// A schema lists records, each an ordered list of fields. A field names either
// a primitive C type ("uint32_t", "unsigned long"), another record of the same
// file, or an explicit size and alignment. Fields may be fixed-size arrays.
//
// Example:
//
//	version: "1"
//	model: lp64
//	records:
//	  - name: Foo
//	    fields:
//	      - name: a
//	        type: long
//	      - "unsigned short tail[4]"
//
// Fields may be written as a mapping or as a C-style declaration string.
package schema
