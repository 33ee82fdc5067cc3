package ports

import "variant-match/internal/types"

// SchemaSourcePort loads a schema declaration document. Compilation
// into a live schema happens in the rules package.
type SchemaSourcePort interface {
	LoadSchemaFile(path string) (types.SchemaFile, error)
}

// CandidateSourcePort loads the requested container and the candidate
// variants for one match. The attrs map (attribute name to declared
// attribute) supplies the kinds used to convert textual values; names
// missing from it are treated as string attributes.
type CandidateSourcePort interface {
	LoadRequest(path string, attrs map[string]types.Attribute) (types.Container, error)
	LoadCandidates(path string, attrs map[string]types.Attribute) ([]types.Candidate, error)
}

// ReportWriterPort persists a match report.
type ReportWriterPort interface {
	WriteReport(report types.MatchReport) error
}

// ReportReaderPort reads a previously written match report back, for
// inspection.
type ReportReaderPort interface {
	ReadReport() (types.MatchReport, error)
}
