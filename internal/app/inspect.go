package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"variant-match/internal/adapters"
)

// Inspect reads a previously written match report back and summarizes
// it.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	reader := adapters.NewReportFileAdapter(outputDir)
	report, err := reader.ReadReport()
	if err != nil {
		return InspectResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("output", outputDir).
		Str("outcome", string(report.Outcome)).
		Msg("report inspected")
	return InspectResult{
		Outcome:    report.Outcome,
		Selected:   report.Selected,
		TraceCount: len(report.Trace),
		Trace:      report.Trace,
	}, nil
}
