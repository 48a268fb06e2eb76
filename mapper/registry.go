package mapper

import (
	"fmt"
	"reflect"

	"prop-caster/internal/match"
	"prop-caster/schema"
)

// suggestionLimit caps the number of closest-name suggestions attached to a
// PropertyRefError.
const suggestionLimit = 3

// Registry holds the mapping configuration for one (S, D) type pair: at most
// one rule per destination property name, plus a set of explicitly ignored
// destination property names.
//
// Configuration is fluent; each call returns the registry for chaining and
// panics with the typed error on invalid input (configuration happens at
// setup time and an invalid property reference is a programmer error, as
// with http.ServeMux.Handle). The Try* counterparts return the error instead
// and are what dynamic configuration, such as the profile loader, uses.
// Either way a failed call leaves the registry untouched.
type Registry[S, D any] struct {
	src *schema.Schema
	dst *schema.Schema

	rules   map[string]rule[S]
	ignored map[string]struct{}
}

// New creates an empty registry for the (S, D) struct type pair.
func New[S, D any]() (*Registry[S, D], error) {
	src, err := schema.For[S]()
	if err != nil {
		return nil, &ConfigError{Reason: "source type", Err: err}
	}

	dst, err := schema.For[D]()
	if err != nil {
		return nil, &ConfigError{Reason: "destination type", Err: err}
	}

	return &Registry[S, D]{
		src:     src,
		dst:     dst,
		rules:   make(map[string]rule[S]),
		ignored: make(map[string]struct{}),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[S, D any]() *Registry[S, D] {
	r, err := New[S, D]()
	if err != nil {
		panic(err)
	}

	return r
}

// SourceSchema returns the schema of the source type.
func (r *Registry[S, D]) SourceSchema() *schema.Schema { return r.src }

// DestinationSchema returns the schema of the destination type.
func (r *Registry[S, D]) DestinationSchema() *schema.Schema { return r.dst }

// Map registers a direct copy rule: destination property dst gets the value
// of source property src. Replaces any earlier rule for dst.
func (r *Registry[S, D]) Map(dst, src string) *Registry[S, D] {
	return r.must(r.TryMap(dst, src))
}

// TryMap is the error-returning form of Map.
func (r *Registry[S, D]) TryMap(dst, src string) error {
	return r.register(RuleDirect, dst, src, nil, nil)
}

// Transform registers a transform rule: destination property dst gets
// fn(source property src). fn must be func(In) Out or func(In) (Out, error).
// Replaces any earlier rule for dst.
func (r *Registry[S, D]) Transform(dst, src string, fn any) *Registry[S, D] {
	return r.must(r.TryTransform(dst, src, fn))
}

// TryTransform is the error-returning form of Transform.
func (r *Registry[S, D]) TryTransform(dst, src string, fn any) error {
	return r.register(RuleTransform, dst, src, fn, nil)
}

// MapIf registers a conditional direct copy rule. The condition is evaluated
// against the whole source object; when it is false the destination property
// stays at its zero value and is never auto-matched.
func (r *Registry[S, D]) MapIf(dst, src string, cond func(S) bool) *Registry[S, D] {
	return r.must(r.TryMapIf(dst, src, cond))
}

// TryMapIf is the error-returning form of MapIf.
func (r *Registry[S, D]) TryMapIf(dst, src string, cond func(S) bool) error {
	if cond == nil {
		return &ConfigError{Reason: fmt.Sprintf("property %q: nil condition", dst)}
	}

	return r.register(RuleDirect, dst, src, nil, cond)
}

// TransformIf registers a conditional transform rule.
func (r *Registry[S, D]) TransformIf(dst, src string, fn any, cond func(S) bool) *Registry[S, D] {
	return r.must(r.TryTransformIf(dst, src, fn, cond))
}

// TryTransformIf is the error-returning form of TransformIf.
func (r *Registry[S, D]) TryTransformIf(dst, src string, fn any, cond func(S) bool) error {
	if cond == nil {
		return &ConfigError{Reason: fmt.Sprintf("property %q: nil condition", dst)}
	}

	return r.register(RuleTransform, dst, src, fn, cond)
}

// Combine registers a combine rule: destination property dst gets fn(source
// object). fn must be func(S) Out or func(S) (Out, error).
func (r *Registry[S, D]) Combine(dst string, fn any) *Registry[S, D] {
	return r.must(r.TryCombine(dst, fn))
}

// TryCombine is the error-returning form of Combine.
func (r *Registry[S, D]) TryCombine(dst string, fn any) error {
	return r.register(RuleCombine, dst, "", fn, nil)
}

// CombineIf registers a conditional combine rule.
func (r *Registry[S, D]) CombineIf(dst string, fn any, cond func(S) bool) *Registry[S, D] {
	return r.must(r.TryCombineIf(dst, fn, cond))
}

// TryCombineIf is the error-returning form of CombineIf.
func (r *Registry[S, D]) TryCombineIf(dst string, fn any, cond func(S) bool) error {
	if cond == nil {
		return &ConfigError{Reason: fmt.Sprintf("property %q: nil condition", dst)}
	}

	return r.register(RuleCombine, dst, "", fn, cond)
}

// Ignore excludes the destination property from auto-matching. It does not
// remove any rule registered for the same name; rules take precedence over
// ignore entries.
func (r *Registry[S, D]) Ignore(dst string) *Registry[S, D] {
	return r.must(r.TryIgnore(dst))
}

// TryIgnore is the error-returning form of Ignore.
func (r *Registry[S, D]) TryIgnore(dst string) error {
	if _, err := r.destRef(dst); err != nil {
		return err
	}

	r.ignored[dst] = struct{}{}

	return nil
}

// Ignored returns true if the destination property is in the ignore set.
func (r *Registry[S, D]) Ignored(dst string) bool {
	_, ok := r.ignored[dst]
	return ok
}

// Rule returns the kind of the rule registered for the destination property,
// or RuleUnknown if none is registered.
func (r *Registry[S, D]) Rule(dst string) RuleKind {
	rl, ok := r.rules[dst]
	if !ok {
		return RuleUnknown
	}

	return rl.kind
}

// register validates all inputs first so that a failing call never mutates
// registry state, then installs the rule, replacing any earlier one for the
// same destination property name.
func (r *Registry[S, D]) register(kind RuleKind, dst, src string, fn any, cond func(S) bool) error {
	if _, err := r.destRef(dst); err != nil {
		return err
	}

	rl := rule[S]{kind: kind, dest: dst, source: src, cond: cond}

	if kind != RuleCombine {
		sp, err := r.sourceRef(src)
		if err != nil {
			return err
		}

		// Unexported source fields cannot be read through reflect.
		if !sp.Readable {
			return &ConfigError{Reason: fmt.Sprintf(
				"property %q: source property %q is not readable", dst, src)}
		}
	}

	if kind == RuleTransform || kind == RuleCombine {
		parsed, err := schema.ParseFunc(fn)
		if err != nil {
			return &ConfigError{Reason: fmt.Sprintf("property %q", dst), Err: err}
		}

		if kind == RuleCombine {
			if srcType := reflect.TypeOf((*S)(nil)).Elem(); !srcType.AssignableTo(parsed.Src) {
				return &ConfigError{Reason: fmt.Sprintf(
					"property %q: combine function takes %v, not the source type %v",
					dst, parsed.Src, srcType)}
			}
		}

		rl.fn = parsed
	}

	r.rules[dst] = rl

	return nil
}

func (r *Registry[S, D]) destRef(name string) (schema.Property, error) {
	p, ok := r.dst.Property(name)
	if !ok {
		return schema.Property{}, &PropertyRefError{
			Side:        SideDestination,
			Schema:      r.dst.ID,
			Name:        name,
			Suggestions: match.Closest(name, r.dst.Names(), suggestionLimit),
		}
	}

	return p, nil
}

func (r *Registry[S, D]) sourceRef(name string) (schema.Property, error) {
	p, ok := r.src.Property(name)
	if !ok {
		return schema.Property{}, &PropertyRefError{
			Side:        SideSource,
			Schema:      r.src.ID,
			Name:        name,
			Suggestions: match.Closest(name, r.src.Names(), suggestionLimit),
		}
	}

	return p, nil
}

func (r *Registry[S, D]) must(err error) *Registry[S, D] {
	if err != nil {
		panic(err)
	}

	return r
}
