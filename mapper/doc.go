// Package mapper implements the mapping-configuration engine: a per-type-pair
// rule registry with fluent configuration, and the execution engine that
// populates destination values by applying registered rules and auto-matching
// the remaining same-named, type-compatible properties.
//
// # Resolution order
//
// For every destination property, exactly one of the following applies:
//  1. A registered rule (direct copy, transform, or combine), gated by its
//     optional condition. A ruled property is claimed even when its condition
//     is false; auto-matching never rescues it.
//  2. Explicit ignore: the property keeps its zero value.
//  3. Auto-match: a same-named, readable, type-compatible source property is
//     copied; otherwise the property keeps its zero value.
//
// A registry, once configured, is safe for concurrent use by any number of
// MapOne/MapMany callers; execution never mutates registry state. Concurrent
// configuration is not supported and must happen before mapping traffic.
package mapper
