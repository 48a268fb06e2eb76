package profile

import (
	"fmt"

	"prop-caster/schema"
)

// FuncRegistry holds the named transform/combine functions and condition
// predicates that profile files may reference. Registration validates shape
// with the same reflection checks the fluent API uses; the full type check
// against a concrete type pair happens at bind time.
type FuncRegistry struct {
	funcs map[string]any
	conds map[string]any
}

// NewFuncRegistry creates an empty function registry.
func NewFuncRegistry() *FuncRegistry {
	return &FuncRegistry{
		funcs: make(map[string]any),
		conds: make(map[string]any),
	}
}

// RegisterFunc registers a named transform or combine function. The function
// must be func(In) Out or func(In) (Out, error). Re-registration for the
// same name replaces the earlier function.
func (r *FuncRegistry) RegisterFunc(name string, fn any) error {
	if name == "" {
		return fmt.Errorf("function name must not be empty")
	}

	if _, err := schema.ParseFunc(fn); err != nil {
		return fmt.Errorf("function %q: %w", name, err)
	}

	r.funcs[name] = fn

	return nil
}

// RegisterCondition registers a named predicate. The function must be
// func(T) bool for some source type T.
func (r *FuncRegistry) RegisterCondition(name string, fn any) error {
	if name == "" {
		return fmt.Errorf("condition name must not be empty")
	}

	if _, err := schema.CheckPredicate(fn); err != nil {
		return fmt.Errorf("condition %q: %w", name, err)
	}

	r.conds[name] = fn

	return nil
}

// Func returns the registered function for name.
func (r *FuncRegistry) Func(name string) (any, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Condition returns the registered predicate for name.
func (r *FuncRegistry) Condition(name string) (any, bool) {
	fn, ok := r.conds[name]
	return fn, ok
}

// HasFunc returns true if a function with the given name exists.
func (r *FuncRegistry) HasFunc(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// HasCondition returns true if a predicate with the given name exists.
func (r *FuncRegistry) HasCondition(name string) bool {
	_, ok := r.conds[name]
	return ok
}
