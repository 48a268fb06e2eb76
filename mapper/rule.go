package mapper

import "prop-caster/schema"

// rule is one registered instruction for computing a single destination
// property. At most one rule exists per destination property name; rules are
// owned exclusively by the registry that created them.
type rule[S any] struct {
	kind   RuleKind
	dest   string
	source string      // source property name (Direct, Transform)
	fn     schema.Func // mapping function (Transform, Combine)
	cond   func(S) bool
}

// conditional returns true if the rule carries a condition.
func (r rule[S]) conditional() bool {
	return r.cond != nil
}
