package schema

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"

	"prop-caster/utils"
)

var (
	ErrNotAFunction  = errors.New("provided mapping function is not a function")
	ErrBadFuncShape  = errors.New("provided function is not a recognizable mapping function")
	ErrDoublePointer = errors.New("mapping functions do not support double pointers")
	ErrBadPredicate  = errors.New("provided condition is not a recognizable predicate")
)

// Func describes a caller-supplied transform or combine function.
//
// Supported shapes:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, error)
//
// The error form propagates its error through the engine unchanged.
type Func struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasErr       bool

	val reflect.Value
}

// ParseFunc inspects the provided function and returns a Func descriptor if
// it is a valid mapping function.
func ParseFunc(fn any) (Func, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Func{}, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return Func{}, ErrBadFuncShape
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return Func{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Func{}, ErrDoublePointer
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	parsed := Func{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: utils.Second(path.Split(alias)),
		val:          fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Func{}, ErrBadFuncShape

	case 1:
		return parsed, nil

	case 2:
		if !isError(fnType.Out(1)) {
			return Func{}, ErrBadFuncShape
		}

		parsed.HasErr = true

		return parsed, nil
	}
}

// Call invokes the function with the given input value. The input must
// already be assignable to f.Src; the engine checks compatibility first.
func (f Func) Call(in reflect.Value) (reflect.Value, error) {
	out := f.val.Call([]reflect.Value{in})

	if f.HasErr && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}

	return out[0], nil
}

// CheckPredicate validates that fn has the shape func(T) bool.
func CheckPredicate(fn any) (reflect.Type, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return nil, ErrNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() != 1 || fnType.IsVariadic() ||
		fnType.Out(0).Kind() != reflect.Bool {
		return nil, ErrBadPredicate
	}

	return fnType.In(0), nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func isError(t reflect.Type) bool {
	return t.Implements(errorType)
}
