package mapper

import (
	"fmt"
	"strings"

	"prop-caster/internal/diagnostic"
	"prop-caster/internal/match"
	"prop-caster/schema"
)

// Explain reports how each destination property will be resolved by this
// registry: the rule that claims it, its ignore status, or the auto-match
// verdict. Destination properties that end up unmapped produce warnings with
// closest-name suggestions.
func (r *Registry[S, D]) Explain() *diagnostic.Diagnostics {
	d := &diagnostic.Diagnostics{}
	pair := r.src.ID.Alias() + "->" + r.dst.ID.Alias()

	for _, p := range r.dst.Properties() {
		if rl, ok := r.rules[p.Name]; ok {
			d.AddInfo("rule", describeRule(rl), pair, p.Name)
			continue
		}

		if _, skip := r.ignored[p.Name]; skip {
			d.AddInfo("ignored", "explicitly excluded from auto-matching", pair, p.Name)
			continue
		}

		if !p.Writable {
			d.AddInfo("not_writable", "property is not writable", pair, p.Name)
			continue
		}

		sp, ok := r.src.Property(p.Name)
		if !ok {
			msg := "no same-named source property"
			if closest := match.Closest(p.Name, r.src.Names(), suggestionLimit); len(closest) > 0 {
				msg += " (closest: " + strings.Join(closest, ", ") + ")"
			}

			d.AddWarning("unmapped", msg, pair, p.Name)

			continue
		}

		if !sp.Readable {
			d.AddWarning("unmapped", "source property is not readable", pair, p.Name)
			continue
		}

		c := schema.Compatible(sp.Type, p.Type)
		if !c.IsCompatible() {
			d.AddWarning("unmapped",
				fmt.Sprintf("source type %v is incompatible with %v", sp.Type, p.Type),
				pair, p.Name)

			continue
		}

		d.AddInfo("auto_matched",
			fmt.Sprintf("copied from source %s (%s)", sp.Name, c),
			pair, p.Name)
	}

	return d
}

func describeRule[S any](rl rule[S]) string {
	var msg string

	switch rl.kind {
	case RuleDirect:
		msg = fmt.Sprintf("%s copy of source %s", rl.kind, rl.source)
	case RuleTransform:
		msg = fmt.Sprintf("%s of source %s via %s", rl.kind, rl.source, funcLabel(rl.fn))
	case RuleCombine:
		msg = fmt.Sprintf("%s of source object via %s", rl.kind, funcLabel(rl.fn))
	default:
		msg = rl.kind.String()
	}

	if rl.conditional() {
		msg += " (conditional)"
	}

	return msg
}

func funcLabel(fn schema.Func) string {
	if fn.PackageAlias != "" {
		return fn.PackageAlias + "." + fn.Name
	}

	return fn.Name
}
