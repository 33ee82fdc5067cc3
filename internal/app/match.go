package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"variant-match/internal/adapters"
	"variant-match/internal/core"
	"variant-match/internal/rules"
	"variant-match/internal/shared"
	"variant-match/internal/types"
)

// Match loads the consumer (and optional producer) schema, merges
// them, loads the request and candidate variants, runs the matcher,
// and writes the report. The outcome is returned as data; mapping zero
// or many survivors to a failure is the caller's concern.
func (s Service) Match(ctx context.Context, req MatchRequest) (MatchResult, error) {
	consumerPath := strings.TrimSpace(req.ConsumerSchema)
	if consumerPath == "" {
		return MatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("consumer schema path is required")
	}
	requestPath := strings.TrimSpace(req.RequestPath)
	if requestPath == "" {
		return MatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("request file path is required")
	}
	candidatesPath := strings.TrimSpace(req.CandidatesPath)
	if candidatesPath == "" {
		return MatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("candidates file path is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return MatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	consumer, err := s.loadSchema(ctx, consumerPath)
	if err != nil {
		return MatchResult{}, err
	}
	var producer *core.Schema
	if producerPath := strings.TrimSpace(req.ProducerSchema); producerPath != "" {
		producer, err = s.loadSchema(ctx, producerPath)
		if err != nil {
			return MatchResult{}, err
		}
	}

	effective, err := core.Merge(consumer, producer)
	if err != nil {
		return MatchResult{}, err
	}

	attrs := effective.AttributeMap()
	requested, err := s.CandidateSource.LoadRequest(requestPath, attrs)
	if err != nil {
		return MatchResult{}, err
	}
	candidates, err := s.CandidateSource.LoadCandidates(candidatesPath, attrs)
	if err != nil {
		return MatchResult{}, err
	}

	matcher := core.NewMatcherCore()
	var trace *adapters.TraceCollector
	if req.Explain {
		trace = adapters.NewTraceCollector()
		matcher.Trace = trace
	}
	surviving, err := matcher.Match(ctx, effective, requested, candidates)
	if err != nil {
		return MatchResult{}, err
	}

	report := types.MatchReport{
		Outcome:   types.OutcomeFor(len(surviving)),
		Requested: shared.RenderContainer(requested),
	}
	for _, candidate := range surviving {
		report.Selected = append(report.Selected, types.SelectedVariant{
			Name:       candidate.ID,
			Attributes: shared.RenderContainer(candidate.Attributes),
		})
	}
	if trace != nil {
		report.Trace = trace.Records()
	}

	writer := adapters.NewReportFileAdapter(outputDir)
	if err := writer.WriteReport(report); err != nil {
		return MatchResult{}, err
	}

	log.Ctx(ctx).Debug().
		Str("outcome", string(report.Outcome)).
		Int("candidates", len(candidates)).
		Int("surviving", len(surviving)).
		Msg("match written")
	return MatchResult{
		Outcome:   report.Outcome,
		Selected:  shared.CandidateIDs(surviving),
		OutputDir: outputDir,
	}, nil
}

func (s Service) loadSchema(ctx context.Context, path string) (*core.Schema, error) {
	doc, err := s.SchemaSource.LoadSchemaFile(path)
	if err != nil {
		return nil, err
	}
	return rules.BuildSchema(ctx, doc)
}
