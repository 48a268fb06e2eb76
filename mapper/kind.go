package mapper

import "prop-caster/internal/common"

// RuleKind identifies the variant of a registered mapping rule.
type RuleKind int

const (
	RuleUnknown RuleKind = iota
	// RuleDirect copies a same-typed source property value unchanged.
	RuleDirect
	// RuleTransform applies a pure function to a single source property value.
	RuleTransform
	// RuleCombine applies a pure function to the whole source object.
	RuleCombine

	// RuleTotal is a constant that represents the total number of kinds defined
	RuleTotal = int(iota)
)

// String returns a human-readable name for the rule kind.
func (k RuleKind) String() string {
	switch k {
	case RuleDirect:
		return "direct"
	case RuleTransform:
		return "transform"
	case RuleCombine:
		return "combine"
	default:
		return common.UnknownStr
	}
}
