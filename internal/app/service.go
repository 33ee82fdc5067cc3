package app

import (
	"variant-match/internal/adapters"
	"variant-match/internal/ports"
)

// Service wires the file-boundary ports in front of the matching
// engine. Report writers are constructed per request since they are
// bound to an output directory.
type Service struct {
	SchemaSource    ports.SchemaSourcePort
	CandidateSource ports.CandidateSourcePort
}

func NewService() Service {
	return Service{
		SchemaSource:    adapters.NewSchemaFileAdapter(),
		CandidateSource: adapters.NewCandidateFileAdapter(),
	}
}
