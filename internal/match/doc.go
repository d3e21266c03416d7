// Package match provides identifier normalization and Levenshtein distance
// for "did you mean" suggestions on unknown type and record names.
//
// Key functions:
//   - NormalizeIdent: folds case and strips separators and the C "_t" suffix
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
