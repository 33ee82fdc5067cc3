package app

import "variant-match/internal/types"

type ValidateRequest struct {
	SchemaPath string
}

type ValidateResult struct {
	Attributes int
	Precedence int
}

type MatchRequest struct {
	ConsumerSchema string
	ProducerSchema string
	RequestPath    string
	CandidatesPath string
	OutputDir      string
	Explain        bool
}

type MatchResult struct {
	Outcome   types.MatchOutcome
	Selected  []string
	OutputDir string
}

type InspectRequest struct {
	OutputDir string
}

type InspectResult struct {
	Outcome    types.MatchOutcome
	Selected   []types.SelectedVariant
	TraceCount int
	Trace      []types.EliminationRecord
}
