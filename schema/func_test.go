package schema_test

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"prop-caster/schema"
)

func plain(int) string                 { panic("not implemented") }
func withErr(int) (string, error)      { panic("not implemented") }
func tooMany(int) (string, bool, bool) { panic("not implemented") }
func noArgs() string                   { panic("not implemented") }
func doublePtr(**int) string           { panic("not implemented") }
func variadic(...int) string           { panic("not implemented") }

func ExampleParseFunc() {
	desc, err := schema.ParseFunc(withErr)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasErr)

	desc, err = schema.ParseFunc(strconv.Itoa)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasErr)

	desc, err = schema.ParseFunc(strconv.Atoi)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasErr)

	_, err = schema.ParseFunc(noArgs)
	fmt.Println(err)

	_, err = schema.ParseFunc(tooMany)
	fmt.Println(err)

	_, err = schema.ParseFunc(42)
	fmt.Println(err)

	// Output:
	// <nil> schema_test withErr int string true
	// <nil> strconv Itoa int string false
	// <nil> strconv Atoi string int true
	// provided function is not a recognizable mapping function
	// provided function is not a recognizable mapping function
	// provided mapping function is not a function
}

func TestParseFuncRejectsDoublePointers(t *testing.T) {
	t.Parallel()

	_, err := schema.ParseFunc(doublePtr)
	if !errors.Is(err, schema.ErrDoublePointer) {
		t.Errorf("ParseFunc(doublePtr) error = %v, want ErrDoublePointer", err)
	}
}

func TestParseFuncRejectsVariadic(t *testing.T) {
	t.Parallel()

	// reflect.Value.Call expects individual variadic elements, not the slice
	// a slice-typed property would supply, so the shape is rejected up front.
	if _, err := schema.ParseFunc(variadic); !errors.Is(err, schema.ErrBadFuncShape) {
		t.Errorf("ParseFunc(variadic) error = %v, want ErrBadFuncShape", err)
	}

	if _, err := schema.CheckPredicate(func(...string) bool { return true }); !errors.Is(err, schema.ErrBadPredicate) {
		t.Errorf("CheckPredicate(variadic) error = %v, want ErrBadPredicate", err)
	}
}

func TestFuncCall(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		fn, err := schema.ParseFunc(plain)
		if err != nil {
			t.Fatalf("ParseFunc(plain) error = %v", err)
		}

		if fn.HasErr {
			t.Error("plain must have HasErr == false")
		}
	})

	t.Run("error form propagates", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		fn, err := schema.ParseFunc(func(int) (string, error) { return "", boom })
		if err != nil {
			t.Fatalf("ParseFunc error = %v", err)
		}

		_, err = fn.Call(reflect.ValueOf(1))
		if !errors.Is(err, boom) {
			t.Errorf("Call error = %v, want the function's own error", err)
		}
	})

	t.Run("plain call returns value", func(t *testing.T) {
		t.Parallel()

		fn, err := schema.ParseFunc(strconv.Itoa)
		if err != nil {
			t.Fatalf("ParseFunc error = %v", err)
		}

		out, err := fn.Call(reflect.ValueOf(42))
		if err != nil || out.String() != "42" {
			t.Errorf("Call = %q, %v", out.String(), err)
		}
	})
}

func TestCheckPredicate(t *testing.T) {
	t.Parallel()

	in, err := schema.CheckPredicate(func(s string) bool { return s != "" })
	if err != nil {
		t.Fatalf("CheckPredicate error = %v", err)
	}

	if in != reflect.TypeOf((*string)(nil)).Elem() {
		t.Errorf("CheckPredicate input = %v, want string", in)
	}

	if _, err := schema.CheckPredicate(func(string) int { return 0 }); !errors.Is(err, schema.ErrBadPredicate) {
		t.Errorf("non-bool result error = %v, want ErrBadPredicate", err)
	}

	if _, err := schema.CheckPredicate("nope"); !errors.Is(err, schema.ErrNotAFunction) {
		t.Errorf("non-function error = %v, want ErrNotAFunction", err)
	}
}
