package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"variant-match/internal/ports"
	"variant-match/internal/shared"
	"variant-match/internal/types"
)

// SchemaFileAdapter implements SchemaSourcePort over YAML schema
// documents. It only parses and normalizes; compiling the document
// into a live schema is the rules package's job.
type SchemaFileAdapter struct{}

func NewSchemaFileAdapter() SchemaFileAdapter {
	return SchemaFileAdapter{}
}

// LoadSchemaFile reads and parses one schema document. Attribute names
// are normalized; structural validation beyond YAML shape is deferred
// to schema compilation.
func (SchemaFileAdapter) LoadSchemaFile(path string) (types.SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SchemaFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read schema file: " + path).
			WithCause(err)
	}

	var doc types.SchemaFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.SchemaFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema file: " + path).
			WithCause(err)
	}

	if doc.SchemaVersion == "" {
		return types.SchemaFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema file missing schema_version: " + path)
	}

	for i := range doc.Attributes {
		doc.Attributes[i].Name = shared.NormalizeAttributeName(doc.Attributes[i].Name)
	}
	for i := range doc.Precedence {
		doc.Precedence[i] = shared.NormalizeAttributeName(doc.Precedence[i])
	}

	log.Debug().
		Str("path", path).
		Int("attributes", len(doc.Attributes)).
		Msg("schema file loaded")
	return doc, nil
}

var _ ports.SchemaSourcePort = SchemaFileAdapter{}
