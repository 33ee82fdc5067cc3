package types

// File-format types for the YAML documents consumed by the adapters:
// schema declarations, variant requests, and candidate variant lists.
// Values are written as strings and converted per attribute kind when
// loaded.

// SchemaFile declares a schema: attributes with their kinds and rule
// chains, plus the disambiguation precedence order.
type SchemaFile struct {
	SchemaVersion string          `yaml:"schema_version"`
	Attributes    []AttributeDecl `yaml:"attributes"`
	Precedence    []string        `yaml:"precedence,omitempty"`
}

// AttributeDecl declares one attribute and its rule chains. Rules run
// in declaration order.
type AttributeDecl struct {
	Name           string     `yaml:"name"`
	Kind           string     `yaml:"kind"`
	Compatibility  []RuleDecl `yaml:"compatibility,omitempty"`
	Disambiguation []RuleDecl `yaml:"disambiguation,omitempty"`
}

// RuleDecl names a built-in rule and its parameters. Which parameters
// apply depends on the rule; unused ones must be left empty.
type RuleDecl struct {
	Rule   string              `yaml:"rule"`
	Scheme string              `yaml:"scheme,omitempty"`
	Prefer []string            `yaml:"prefer,omitempty"`
	Table  map[string][]string `yaml:"table,omitempty"`
}

// RequestFile holds the consumer's requested attribute values.
type RequestFile struct {
	SchemaVersion string            `yaml:"schema_version"`
	Attributes    map[string]string `yaml:"attributes,omitempty"`
}

// CandidatesFile lists the candidate variants for one match.
type CandidatesFile struct {
	SchemaVersion string        `yaml:"schema_version"`
	Variants      []VariantDecl `yaml:"variants"`
}

// VariantDecl is one candidate variant: its identity and declared
// attribute values.
type VariantDecl struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}
