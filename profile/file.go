package profile

// File represents the root of a mapping profile file.
// This is the authoritative, human-reviewed mapping configuration.
type File struct {
	// Version of the profile schema (for future compatibility).
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Profiles is a list of type pair mapping profiles.
	Profiles []Profile `json:"profiles" yaml:"profiles"`
}

// Profile defines the rules for mapping one source type to one target type.
type Profile struct {
	// Source type identifier, either the short "pkg.Type" alias or the full
	// "import/path.Type" form.
	Source string `json:"source" yaml:"source"`

	// Target type identifier.
	Target string `json:"target" yaml:"target"`

	// Fields defines explicit per-property rules. A later rule for the same
	// target property replaces an earlier one, matching the fluent API.
	Fields []FieldRule `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Ignore lists target properties excluded from auto-matching.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
}

// FieldRule defines how one target property is populated.
type FieldRule struct {
	// Target is the destination property name.
	Target string `json:"target" yaml:"target"`

	// Source is the source property name. Empty means the rule is a combine
	// over the whole source object (Transform is then required).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Transform names a registered function applied to the source property
	// value (or to the whole source object for combines). Empty means a
	// direct copy.
	Transform string `json:"transform,omitempty" yaml:"transform,omitempty"`

	// Condition names a registered predicate over the source object. Empty
	// means the rule always applies.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// TypePair returns the "source->target" identifier used in diagnostics.
func (p *Profile) TypePair() string {
	return p.Source + "->" + p.Target
}
