// Package layout computes the in-memory layout of records under natural
// alignment rules.
//
// A record is an ordered list of fields, each with a byte size and a
// power-of-two alignment. Compute walks the fields in declared order, rounds
// the running offset up to each field's alignment, and rounds the final size
// up to the record's alignment (the largest field alignment).
//
// Key types:
//   - FieldSpec: field name, size and alignment
//   - RecordSpec: named, ordered list of fields
//   - Result: total size, per-field offsets and padding
package layout
