package mapper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"prop-caster/schema"
)

// ErrNilSource is returned when MapOne receives a nil source, or when a
// MapMany batch contains a nil element.
var ErrNilSource = errors.New("source value is nil")

// Property reference sides.
const (
	SideSource      = "source"
	SideDestination = "destination"
)

// PropertyRefError reports a registration call whose property argument does
// not denote an actual property of the expected schema.
type PropertyRefError struct {
	Side        string
	Schema      schema.TypeID
	Name        string
	Suggestions []string
}

func (e *PropertyRefError) Error() string {
	msg := fmt.Sprintf("%s schema %s has no property %q", e.Side, e.Schema.Alias(), e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (closest: " + strings.Join(e.Suggestions, ", ") + ")"
	}

	return msg
}

// ConversionError reports a value that cannot be assigned to the destination
// property's declared type at execution time.
type ConversionError struct {
	Property string
	Got      reflect.Type
	Want     reflect.Type
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("property %q: cannot convert %v to %v", e.Property, e.Got, e.Want)
}

// ConfigError reports structural misuse of the registry, such as a mapping
// function of an unsupported shape or a combine function that does not take
// the source object.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}

	return e.Reason
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
