// Package diagnostic provides structured warnings, errors, and
// "why this mapped" explanations for mapping profiles and registries.
//
// Key capabilities:
//   - Structural profile validation reports
//   - Unmapped destination property warnings
//   - Explanation of per-property resolution decisions
package diagnostic
