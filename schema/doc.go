// Package schema provides runtime type introspection for the mapper:
// property descriptors derived from struct types via reflection, a
// process-wide schema cache, the explicit type-compatibility table used
// during auto-matching, and inspection of caller-supplied mapping functions.
package schema
