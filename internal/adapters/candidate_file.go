package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"variant-match/internal/ports"
	"variant-match/internal/shared"
	"variant-match/internal/types"
)

// CandidateFileAdapter implements CandidateSourcePort over YAML
// request and variant documents. Textual values are converted per the
// declared attribute kinds; names unknown to the schema become plain
// string attributes, matching the engine's treatment of attributes
// declared on one side only.
type CandidateFileAdapter struct{}

func NewCandidateFileAdapter() CandidateFileAdapter {
	return CandidateFileAdapter{}
}

// LoadRequest reads the consumer's requested attribute values.
func (CandidateFileAdapter) LoadRequest(path string, attrs map[string]types.Attribute) (types.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Container{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read request file: " + path).
			WithCause(err)
	}

	var doc types.RequestFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.Container{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse request file: " + path).
			WithCause(err)
	}
	if doc.SchemaVersion == "" {
		return types.Container{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("request file missing schema_version: " + path)
	}

	container, err := buildContainer(doc.Attributes, attrs)
	if err != nil {
		return types.Container{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid requested attribute in " + path).
			WithCause(err)
	}
	return container, nil
}

// LoadCandidates reads the candidate variant list.
func (CandidateFileAdapter) LoadCandidates(path string, attrs map[string]types.Attribute) ([]types.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read candidates file: " + path).
			WithCause(err)
	}

	var doc types.CandidatesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse candidates file: " + path).
			WithCause(err)
	}
	if doc.SchemaVersion == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("candidates file missing schema_version: " + path)
	}

	seen := map[string]struct{}{}
	candidates := make([]types.Candidate, 0, len(doc.Variants))
	for _, variant := range doc.Variants {
		if variant.Name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("variant without a name in " + path)
		}
		if _, dup := seen[variant.Name]; dup {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate variant %s in %s", variant.Name, path))
		}
		seen[variant.Name] = struct{}{}

		container, err := buildContainer(variant.Attributes, attrs)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid attribute on variant %s in %s", variant.Name, path)).
				WithCause(err)
		}
		candidates = append(candidates, types.Candidate{
			ID:         variant.Name,
			Attributes: container,
		})
	}
	return candidates, nil
}

func buildContainer(raw map[string]string, attrs map[string]types.Attribute) (types.Container, error) {
	values := make(map[types.Attribute]types.Value, len(raw))
	for name, text := range raw {
		normalized := shared.NormalizeAttributeName(name)
		attr, ok := attrs[normalized]
		if !ok {
			attr = types.StringAttribute(normalized)
		}
		value, err := types.ParseValue(attr.Kind, text)
		if err != nil {
			return types.Container{}, fmt.Errorf("attribute %s: %w", normalized, err)
		}
		values[attr] = value
	}
	return types.NewContainer(values), nil
}

var _ ports.CandidateSourcePort = CandidateFileAdapter{}
