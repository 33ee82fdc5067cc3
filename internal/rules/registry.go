package rules

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"variant-match/internal/core"
	"variant-match/internal/ports"
	"variant-match/internal/types"
)

// Built-in rule names usable from schema documents.
const (
	RuleExact          = "exact"
	RuleEquivalence    = "equivalence"
	RuleMinVersion     = "min-version"
	RulePrefer         = "prefer"
	RuleRequested      = "requested"
	RuleHighestVersion = "highest-version"
)

// BuildSchema compiles a schema document into a live schema: registers
// every declared attribute, binds its rule chains through the built-in
// registry, and declares the precedence order. Any inconsistency in
// the document is a configuration error; no partially built schema is
// returned.
func BuildSchema(ctx context.Context, doc types.SchemaFile) (*core.Schema, error) {
	assert.NotEmpty(ctx, doc.SchemaVersion, "schema_version must be set")

	schema := core.NewSchema()
	for _, decl := range doc.Attributes {
		if decl.Name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("attribute name must not be empty")
		}
		kind, ok := types.ParseValueKind(decl.Kind)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("attribute %s has unknown kind %q", decl.Name, decl.Kind))
		}
		attr := types.Attribute{Name: decl.Name, Kind: kind}
		slot, err := schema.Attribute(attr)
		if err != nil {
			return nil, err
		}
		for _, ruleDecl := range decl.Compatibility {
			rule, err := buildCompatibilityRule(attr, ruleDecl)
			if err != nil {
				return nil, err
			}
			slot.AddCompatibility(rule)
		}
		for _, ruleDecl := range decl.Disambiguation {
			rule, err := buildDisambiguationRule(attr, ruleDecl)
			if err != nil {
				return nil, err
			}
			slot.AddDisambiguation(rule)
		}
	}

	if len(doc.Precedence) > 0 {
		ordered := make([]types.Attribute, 0, len(doc.Precedence))
		for _, name := range doc.Precedence {
			attr, ok := attributeNamed(schema, name)
			if !ok {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("precedence names undeclared attribute %s", name))
			}
			ordered = append(ordered, attr)
		}
		if err := schema.DeclarePrecedence(ordered...); err != nil {
			return nil, err
		}
	}

	log.Ctx(ctx).Debug().
		Int("attributes", len(doc.Attributes)).
		Int("precedence", len(doc.Precedence)).
		Msg("schema compiled")
	return schema, nil
}

func buildCompatibilityRule(attr types.Attribute, decl types.RuleDecl) (ports.CompatibilityRule, error) {
	switch decl.Rule {
	case RuleExact:
		return NewExactMatch(), nil
	case RuleEquivalence:
		table := make(map[types.Value][]types.Value, len(decl.Table))
		for requested, accepted := range decl.Table {
			key, err := parseRuleValue(attr, requested)
			if err != nil {
				return nil, err
			}
			values := make([]types.Value, 0, len(accepted))
			for _, raw := range accepted {
				value, err := parseRuleValue(attr, raw)
				if err != nil {
					return nil, err
				}
				values = append(values, value)
			}
			table[key] = values
		}
		if len(table) == 0 {
			return nil, ruleConfigError(attr, decl.Rule, "requires a table")
		}
		return NewEquivalence(table), nil
	case RuleMinVersion:
		scheme, err := ruleScheme(attr, decl)
		if err != nil {
			return nil, err
		}
		return NewMinVersion(scheme), nil
	case RulePrefer, RuleRequested, RuleHighestVersion:
		return nil, ruleConfigError(attr, decl.Rule, "is a disambiguation rule")
	default:
		return nil, ruleConfigError(attr, decl.Rule, "is not a known rule")
	}
}

func buildDisambiguationRule(attr types.Attribute, decl types.RuleDecl) (ports.DisambiguationRule, error) {
	switch decl.Rule {
	case RulePrefer:
		if len(decl.Prefer) == 0 {
			return nil, ruleConfigError(attr, decl.Rule, "requires a prefer list")
		}
		ordered := make([]types.Value, 0, len(decl.Prefer))
		for _, raw := range decl.Prefer {
			value, err := parseRuleValue(attr, raw)
			if err != nil {
				return nil, err
			}
			ordered = append(ordered, value)
		}
		return NewPrefer(ordered), nil
	case RuleRequested:
		return NewKeepRequested(), nil
	case RuleHighestVersion:
		scheme, err := ruleScheme(attr, decl)
		if err != nil {
			return nil, err
		}
		return NewHighestVersion(scheme), nil
	case RuleExact, RuleEquivalence, RuleMinVersion:
		return nil, ruleConfigError(attr, decl.Rule, "is a compatibility rule")
	default:
		return nil, ruleConfigError(attr, decl.Rule, "is not a known rule")
	}
}

func ruleScheme(attr types.Attribute, decl types.RuleDecl) (VersionScheme, error) {
	if attr.Kind != types.ValueKindVersion {
		return "", ruleConfigError(attr, decl.Rule, "requires a version attribute")
	}
	scheme, ok := ParseVersionScheme(decl.Scheme)
	if !ok {
		return "", ruleConfigError(attr, decl.Rule, fmt.Sprintf("has unknown scheme %q", decl.Scheme))
	}
	return scheme, nil
}

func parseRuleValue(attr types.Attribute, raw string) (types.Value, error) {
	value, err := types.ParseValue(attr.Kind, raw)
	if err != nil {
		return types.Value{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("attribute %s rule value invalid", attr.Name)).
			WithCause(err)
	}
	return value, nil
}

func ruleConfigError(attr types.Attribute, rule string, detail string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("attribute %s: rule %q %s", attr.Name, rule, detail))
}

func attributeNamed(schema *core.Schema, name string) (types.Attribute, bool) {
	for _, attr := range schema.Attributes() {
		if attr.Name == name {
			return attr, true
		}
	}
	return types.Attribute{}, false
}
