package profile

import (
	"fmt"

	"prop-caster/internal/diagnostic"
)

// Validate performs structural validation of a profile file. It needs no
// type information; property and function name resolution happens at bind
// time against the concrete schemas.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("profile_is_nil", "profile file is nil", "", "")
		return res
	}

	if f.Version != "" && f.Version != "1" {
		res.AddError("unknown_version", fmt.Sprintf("unknown profile version %q", f.Version), "", "")
	}

	seenPairs := map[string]struct{}{}

	for i := range f.Profiles {
		p := &f.Profiles[i]
		pair := p.TypePair()

		if p.Source == "" {
			res.AddError("missing_source", "profile has no source type", pair, "")
		}

		if p.Target == "" {
			res.AddError("missing_target", "profile has no target type", pair, "")
		}

		if _, ok := seenPairs[pair]; ok {
			res.AddError("duplicate_profile", "duplicate profile for this type pair", pair, "")
		}

		seenPairs[pair] = struct{}{}

		validateFields(res, p, pair)
		validateIgnore(res, p, pair)
	}

	return res
}

func validateFields(res *diagnostic.Diagnostics, p *Profile, pair string) {
	seenTargets := map[string]struct{}{}

	for i := range p.Fields {
		fr := &p.Fields[i]

		if fr.Target == "" {
			res.AddError("missing_field_target", "field rule has no target property", pair, "")
			continue
		}

		if fr.Source == "" && fr.Transform == "" {
			res.AddError("missing_transform",
				"field rule with no source property must name a combine transform",
				pair, fr.Target)
		}

		if _, ok := seenTargets[fr.Target]; ok {
			res.AddWarning("duplicate_field_target",
				"duplicate field rule; the later definition replaces the earlier one",
				pair, fr.Target)
		}

		seenTargets[fr.Target] = struct{}{}
	}
}

func validateIgnore(res *diagnostic.Diagnostics, p *Profile, pair string) {
	seen := map[string]struct{}{}

	for _, name := range p.Ignore {
		if name == "" {
			res.AddError("missing_ignore_target", "ignore entry has no property name", pair, "")
			continue
		}

		if _, ok := seen[name]; ok {
			res.AddWarning("duplicate_ignore", "duplicate ignore entry", pair, name)
		}

		seen[name] = struct{}{}
	}
}
