// Package diagnostic provides structured errors, warnings and notes produced
// while loading record schemas and analyzing Go structs.
//
// Key capabilities:
//   - Unknown type reports with "did you mean" suggestions
//   - Layout mismatches between the computed and the compiler layout
//   - Skipped records that cannot be laid out
package diagnostic
