// Package match provides identifier normalization, Levenshtein distance
// calculation, and closest-name suggestions.
//
// Auto-matching itself is exact-name; this package only powers the
// "did you mean" part of property-reference errors and explain output.
package match
