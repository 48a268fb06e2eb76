package schema

import (
	"reflect"

	"prop-caster/internal/common"
)

// Compatibility represents the level of compatibility between a source and
// a destination property type during auto-matching.
type Compatibility int

const (
	// Incompatible means the value cannot be copied.
	Incompatible Compatibility = iota
	// WrapOptional means the bare source value is wrapped into the
	// destination's optional (pointer) type.
	WrapOptional
	// UnwrapOptional means the optional source value is dereferenced into
	// the bare destination type; a nil source leaves the destination zero.
	UnwrapOptional
	// Assignable means the source value is directly assignable to the
	// destination type (interface satisfaction included).
	Assignable
	// Identical means the types are exactly the same.
	Identical
)

const (
	VerdictIdentical      = "identical"
	VerdictAssignable     = "assignable"
	VerdictUnwrapOptional = "unwrap_optional"
	VerdictWrapOptional   = "wrap_optional"
	VerdictIncompatible   = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c Compatibility) String() string {
	switch c {
	case Identical:
		return VerdictIdentical
	case Assignable:
		return VerdictAssignable
	case UnwrapOptional:
		return VerdictUnwrapOptional
	case WrapOptional:
		return VerdictWrapOptional
	case Incompatible:
		return VerdictIncompatible
	default:
		return common.UnknownStr
	}
}

// IsCompatible returns true for any verdict other than Incompatible.
func (c Compatibility) IsCompatible() bool {
	return c != Incompatible
}

// Compatible determines whether a source type can feed a destination type.
//
// The table is deliberately explicit and narrow:
//   - identical types match
//   - a source assignable to the destination matches (interface
//     satisfaction; Go assignability never widens numerics or coerces
//     strings, which is exactly the contract wanted here)
//   - optional-of-T on both sides requires identical inner types
//     (already covered by the identical check)
//   - optional-of-T vs bare T matches in either direction
//   - everything else is incompatible
func Compatible(source, target reflect.Type) Compatibility {
	if source == nil || target == nil {
		return Incompatible
	}

	if source == target {
		return Identical
	}

	srcPtr := source.Kind() == reflect.Ptr
	dstPtr := target.Kind() == reflect.Ptr

	// *T vs *U with T != U: no bridging across different inners.
	if srcPtr && dstPtr {
		return Incompatible
	}

	if source.AssignableTo(target) {
		return Assignable
	}

	if srcPtr && bareAssignable(source.Elem(), target) {
		return UnwrapOptional
	}

	if dstPtr && bareAssignable(source, target.Elem()) {
		return WrapOptional
	}

	return Incompatible
}

func bareAssignable(source, target reflect.Type) bool {
	// Reject double optionals outright.
	if source.Kind() == reflect.Ptr || target.Kind() == reflect.Ptr {
		return false
	}

	return source == target || source.AssignableTo(target)
}

// Assign copies src into dst according to the compatibility verdict.
// Returns false if the verdict is Incompatible (dst is left untouched).
// A nil optional source also leaves dst untouched.
func Assign(dst, src reflect.Value, c Compatibility) bool {
	switch c {
	default:
		return false

	case Identical, Assignable:
		dst.Set(src)

	case UnwrapOptional:
		if src.IsNil() {
			return true
		}

		dst.Set(src.Elem())

	case WrapOptional:
		boxed := reflect.New(dst.Type().Elem())
		boxed.Elem().Set(src)
		dst.Set(boxed)
	}

	return true
}
