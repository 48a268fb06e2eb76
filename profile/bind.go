package profile

import (
	"errors"
	"fmt"

	"prop-caster/mapper"
	"prop-caster/schema"
)

var (
	ErrProfileNotFound = errors.New("no profile found for the requested type pair")
	ErrUnknownFunc     = errors.New("profile references an unregistered function")
)

// Bind builds a mapper registry for the (S, D) type pair from the matching
// profile in the file, resolving named functions against funcs. Property and
// function misuse surfaces as the core mapper error types.
func Bind[S, D any](f *File, funcs *FuncRegistry) (*mapper.Registry[S, D], error) {
	if diags := Validate(f); diags.HasErrors() {
		return nil, diags.Error()
	}

	reg, err := mapper.New[S, D]()
	if err != nil {
		return nil, err
	}

	srcID := reg.SourceSchema().ID
	dstID := reg.DestinationSchema().ID

	p, ok := findProfile(f, srcID, dstID)
	if !ok {
		return nil, fmt.Errorf("%w: %s -> %s", ErrProfileNotFound, srcID.Alias(), dstID.Alias())
	}

	for i := range p.Fields {
		if err := bindField(reg, funcs, &p.Fields[i]); err != nil {
			return nil, err
		}
	}

	for _, name := range p.Ignore {
		if err := reg.TryIgnore(name); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func findProfile(f *File, src, dst schema.TypeID) (*Profile, bool) {
	for i := range f.Profiles {
		p := &f.Profiles[i]
		if matchesType(p.Source, src) && matchesType(p.Target, dst) {
			return p, true
		}
	}

	return nil, false
}

// matchesType accepts either the short "pkg.Type" alias or the full
// "import/path.Type" form.
func matchesType(ref string, id schema.TypeID) bool {
	return ref == id.Alias() || ref == id.String()
}

func bindField[S, D any](reg *mapper.Registry[S, D], funcs *FuncRegistry, fr *FieldRule) error {
	cond, err := resolveCondition[S](funcs, fr)
	if err != nil {
		return err
	}

	// Combine: no source property, function over the whole source object.
	if fr.Source == "" {
		fn, err := resolveFunc(funcs, fr)
		if err != nil {
			return err
		}

		if cond != nil {
			return reg.TryCombineIf(fr.Target, fn, cond)
		}

		return reg.TryCombine(fr.Target, fn)
	}

	if fr.Transform != "" {
		fn, err := resolveFunc(funcs, fr)
		if err != nil {
			return err
		}

		if cond != nil {
			return reg.TryTransformIf(fr.Target, fr.Source, fn, cond)
		}

		return reg.TryTransform(fr.Target, fr.Source, fn)
	}

	if cond != nil {
		return reg.TryMapIf(fr.Target, fr.Source, cond)
	}

	return reg.TryMap(fr.Target, fr.Source)
}

func resolveFunc(funcs *FuncRegistry, fr *FieldRule) (any, error) {
	if funcs == nil {
		return nil, fmt.Errorf("%w: transform %q (no function registry given)", ErrUnknownFunc, fr.Transform)
	}

	fn, ok := funcs.Func(fr.Transform)
	if !ok {
		return nil, fmt.Errorf("%w: transform %q", ErrUnknownFunc, fr.Transform)
	}

	return fn, nil
}

func resolveCondition[S any](funcs *FuncRegistry, fr *FieldRule) (func(S) bool, error) {
	if fr.Condition == "" {
		return nil, nil
	}

	if funcs == nil {
		return nil, fmt.Errorf("%w: condition %q (no function registry given)", ErrUnknownFunc, fr.Condition)
	}

	raw, ok := funcs.Condition(fr.Condition)
	if !ok {
		return nil, fmt.Errorf("%w: condition %q", ErrUnknownFunc, fr.Condition)
	}

	cond, ok := raw.(func(S) bool)
	if !ok {
		return nil, &mapper.ConfigError{Reason: fmt.Sprintf(
			"property %q: condition %q is not a predicate over the source type",
			fr.Target, fr.Condition)}
	}

	return cond, nil
}
