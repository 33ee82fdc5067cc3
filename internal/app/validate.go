package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"variant-match/internal/rules"
)

// Validate compiles a schema document without matching anything, so a
// build configuration can be checked in isolation.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	path := strings.TrimSpace(req.SchemaPath)
	if path == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema path is required")
	}
	doc, err := s.SchemaSource.LoadSchemaFile(path)
	if err != nil {
		return ValidateResult{}, err
	}
	schema, err := rules.BuildSchema(ctx, doc)
	if err != nil {
		return ValidateResult{}, err
	}
	log.Ctx(ctx).Debug().Str("schema", path).Msg("schema validated")
	return ValidateResult{
		Attributes: len(schema.Attributes()),
		Precedence: len(schema.Precedence()),
	}, nil
}
