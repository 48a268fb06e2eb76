package schema_test

import (
	"fmt"
	"reflect"
	"testing"

	"prop-caster/hr"
	"prop-caster/schema"
)

func TestCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source   reflect.Type
		target   reflect.Type
		expected schema.Compatibility
	}{
		// Identical types
		{reflect.TypeOf((*string)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(), schema.Identical},
		{reflect.TypeOf((**string)(nil)).Elem(), reflect.TypeOf((**string)(nil)).Elem(), schema.Identical},
		{reflect.TypeOf((*hr.Grade)(nil)).Elem(), reflect.TypeOf((*hr.Grade)(nil)).Elem(), schema.Identical},

		// Interface satisfaction is assignable
		{reflect.TypeOf((**hr.Employee)(nil)).Elem(), reflect.TypeOf((*any)(nil)).Elem(), schema.Assignable},
		{reflect.TypeOf((*fmt.Stringer)(nil)).Elem(), reflect.TypeOf((*any)(nil)).Elem(), schema.Assignable},

		// Optional bridging, both directions
		{reflect.TypeOf((**string)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(), schema.UnwrapOptional},
		{reflect.TypeOf((*string)(nil)).Elem(), reflect.TypeOf((**string)(nil)).Elem(), schema.WrapOptional},
		{reflect.TypeOf((**int64)(nil)).Elem(), reflect.TypeOf((*int64)(nil)).Elem(), schema.UnwrapOptional},

		// Optionals with different inner types never match
		{reflect.TypeOf((**string)(nil)).Elem(), reflect.TypeOf((**int)(nil)).Elem(), schema.Incompatible},
		{reflect.TypeOf((**string)(nil)).Elem(), reflect.TypeOf((*int)(nil)).Elem(), schema.Incompatible},

		// Double pointers are rejected
		{reflect.TypeOf((***string)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(), schema.Incompatible},
		{reflect.TypeOf((*string)(nil)).Elem(), reflect.TypeOf((***string)(nil)).Elem(), schema.Incompatible},

		// No implicit numeric widening, no string coercion
		{reflect.TypeOf((*int32)(nil)).Elem(), reflect.TypeOf((*int64)(nil)).Elem(), schema.Incompatible},
		{reflect.TypeOf((*float64)(nil)).Elem(), reflect.TypeOf((*int64)(nil)).Elem(), schema.Incompatible},
		{reflect.TypeOf((*hr.Grade)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(), schema.Incompatible},
		{reflect.TypeOf((*string)(nil)).Elem(), reflect.TypeOf((*hr.Grade)(nil)).Elem(), schema.Incompatible},
		{reflect.TypeOf((*[]byte)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(), schema.Incompatible},
	}

	for _, tt := range tests {
		tt := tt
		name := fmt.Sprintf("%v->%v", tt.source, tt.target)
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := schema.Compatible(tt.source, tt.target); got != tt.expected {
				t.Errorf("Compatible(%v, %v) = %v, want %v", tt.source, tt.target, got, tt.expected)
			}
		})
	}
}

func TestAssignBridgesOptionals(t *testing.T) {
	t.Parallel()

	t.Run("unwrap", func(t *testing.T) {
		t.Parallel()

		src := "nick"
		var dst string

		ok := schema.Assign(reflect.ValueOf(&dst).Elem(), reflect.ValueOf(&src), schema.UnwrapOptional)
		if !ok || dst != "nick" {
			t.Errorf("Assign unwrap = %v, dst %q", ok, dst)
		}
	})

	t.Run("unwrap nil leaves zero", func(t *testing.T) {
		t.Parallel()

		var src *string
		dst := "untouched"

		ok := schema.Assign(reflect.ValueOf(&dst).Elem(), reflect.ValueOf(src), schema.UnwrapOptional)
		if !ok || dst != "untouched" {
			t.Errorf("Assign nil unwrap = %v, dst %q", ok, dst)
		}
	})

	t.Run("wrap", func(t *testing.T) {
		t.Parallel()

		src := int64(7)
		var dst *int64

		ok := schema.Assign(reflect.ValueOf(&dst).Elem(), reflect.ValueOf(src), schema.WrapOptional)
		if !ok || dst == nil || *dst != 7 {
			t.Errorf("Assign wrap = %v, dst %v", ok, dst)
		}
	})

	t.Run("incompatible refuses", func(t *testing.T) {
		t.Parallel()

		var dst string

		ok := schema.Assign(reflect.ValueOf(&dst).Elem(), reflect.ValueOf(1), schema.Incompatible)
		if ok {
			t.Error("Assign with Incompatible verdict must refuse")
		}
	})
}
