package mapper

import (
	"reflect"

	"prop-caster/schema"
)

// MapOne maps a single source value to a freshly constructed destination
// value: registered rules first, then auto-matching for every remaining
// writable, unignored destination property.
func (r *Registry[S, D]) MapOne(source *S) (*D, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	dest := new(D)
	dv := reflect.ValueOf(dest).Elem()
	sv := reflect.ValueOf(source).Elem()

	// Rules. Each destination property is independent, so iteration happens
	// in declaration order purely for deterministic error reporting.
	for _, p := range r.dst.Properties() {
		rl, ok := r.rules[p.Name]
		if !ok {
			continue
		}

		if err := r.applyRule(rl, p, dv, sv, source); err != nil {
			return nil, err
		}
	}

	// Auto-match everything not claimed by a rule and not ignored.
	for _, p := range r.dst.Properties() {
		if !p.Writable {
			continue
		}

		if _, ruled := r.rules[p.Name]; ruled {
			continue
		}

		if _, skip := r.ignored[p.Name]; skip {
			continue
		}

		sp, ok := r.src.Property(p.Name)
		if !ok || !sp.Readable {
			continue
		}

		c := schema.Compatible(sp.Type, p.Type)
		if !c.IsCompatible() {
			continue
		}

		schema.Assign(dv.Field(p.Index), sv.Field(sp.Index), c)
	}

	return dest, nil
}

// MapMany maps each source element in input order. An empty or nil input
// yields an empty output and no error; the first element error aborts the
// whole batch.
func (r *Registry[S, D]) MapMany(sources []*S) ([]*D, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	out := make([]*D, 0, len(sources))

	for _, s := range sources {
		d, err := r.MapOne(s)
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}

// applyRule computes and writes one ruled destination property. A false
// condition claims the property without writing it; caller-supplied function
// errors propagate unchanged.
func (r *Registry[S, D]) applyRule(rl rule[S], p schema.Property, dv, sv reflect.Value, source *S) error {
	if rl.conditional() && !rl.cond(*source) {
		return nil
	}

	if !p.Writable {
		return nil
	}

	switch rl.kind {
	default:
		return &ConfigError{Reason: "property \"" + p.Name + "\": malformed rule"}

	case RuleDirect:
		sp, ok := r.src.Property(rl.source)
		if !ok {
			return &ConfigError{Reason: "property \"" + p.Name + "\": rule references unknown source property \"" + rl.source + "\""}
		}

		c := schema.Compatible(sp.Type, p.Type)
		if !c.IsCompatible() {
			return &ConversionError{Property: p.Name, Got: sp.Type, Want: p.Type}
		}

		schema.Assign(dv.Field(p.Index), sv.Field(sp.Index), c)

		return nil

	case RuleTransform:
		sp, ok := r.src.Property(rl.source)
		if !ok {
			return &ConfigError{Reason: "property \"" + p.Name + "\": rule references unknown source property \"" + rl.source + "\""}
		}

		if !sp.Type.AssignableTo(rl.fn.Src) {
			return &ConversionError{Property: p.Name, Got: sp.Type, Want: rl.fn.Src}
		}

		out, err := rl.fn.Call(sv.Field(sp.Index))
		if err != nil {
			return err
		}

		return r.writeResult(p, dv, out, rl.fn.Dst)

	case RuleCombine:
		out, err := rl.fn.Call(sv)
		if err != nil {
			return err
		}

		return r.writeResult(p, dv, out, rl.fn.Dst)
	}
}

func (r *Registry[S, D]) writeResult(p schema.Property, dv, out reflect.Value, outType reflect.Type) error {
	c := schema.Compatible(outType, p.Type)
	if !c.IsCompatible() {
		return &ConversionError{Property: p.Name, Got: outType, Want: p.Type}
	}

	schema.Assign(dv.Field(p.Index), out, c)

	return nil
}
