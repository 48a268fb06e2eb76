package schema

import "reflect"

// Property identifies one named, typed property within a schema.
// Exported struct fields are both readable and writable; unexported fields
// are neither (they cannot be touched from outside their package).
type Property struct {
	Name     string
	Type     reflect.Type
	Index    int
	Readable bool
	Writable bool
}

// IsOptional returns true if the property's type is an optional wrapper
// (a pointer in this type system).
func (p Property) IsOptional() bool {
	return p.Type.Kind() == reflect.Ptr
}
