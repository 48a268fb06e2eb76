package schema

import (
	"errors"
	"fmt"
	"reflect"

	"prop-caster/internal/common"
)

var ErrNotAStruct = errors.New("schema can only be derived for struct types")

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "prop-caster/hr"
	Name    string // e.g., "Employee"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Alias returns the short "pkg.Type" form, e.g. "hr.Employee".
func (t TypeID) Alias() string {
	alias := common.PkgAlias(t.PkgPath)
	if alias == "" {
		return t.Name
	}

	return alias + "." + t.Name
}

// IDOf returns the TypeID for a reflect.Type.
func IDOf(t reflect.Type) TypeID {
	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// Schema describes the named properties of one struct type. Schemas are
// immutable once derived and safe for concurrent use.
type Schema struct {
	ID   TypeID
	Type reflect.Type

	props  []Property
	byName map[string]int
}

// Of derives (or fetches from cache) the schema for the given struct type.
func Of(t reflect.Type) (*Schema, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %v", ErrNotAStruct, t)
	}

	return cached(t), nil
}

// For derives (or fetches from cache) the schema for the struct type T.
func For[T any]() (*Schema, error) {
	return Of(reflect.TypeOf((*T)(nil)).Elem())
}

func derive(t reflect.Type) *Schema {
	s := &Schema{
		ID:     IDOf(t),
		Type:   t,
		byName: make(map[string]int, t.NumField()),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		// Embedded fields are opaque values here; nested graph mapping
		// is out of scope, so they participate as single properties.
		p := Property{
			Name:     f.Name,
			Type:     f.Type,
			Index:    i,
			Readable: f.IsExported(),
			Writable: f.IsExported(),
		}

		s.byName[p.Name] = len(s.props)
		s.props = append(s.props, p)
	}

	return s
}

// Properties returns the descriptors in declaration order.
func (s *Schema) Properties() []Property {
	return s.props
}

// Property returns the descriptor for the named property.
func (s *Schema) Property(name string) (Property, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Property{}, false
	}

	return s.props[i], true
}

// Has returns true if the schema declares the named property.
func (s *Schema) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Names returns all property names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.props))
	for i, p := range s.props {
		names[i] = p.Name
	}

	return names
}
