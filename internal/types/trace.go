package types

// EliminationPhase says which matching phase removed a candidate.
type EliminationPhase string

const (
	PhaseCompatibility  EliminationPhase = "compatibility"
	PhaseDisambiguation EliminationPhase = "disambiguation"
)

// EliminationRecord is one entry in the match trace: which attribute
// eliminated which candidate, with both sides' values rendered for
// human-readable failure reporting. The trace is a write-only side
// channel and never influences the match outcome.
type EliminationRecord struct {
	Candidate string           `yaml:"candidate"`
	Attribute string           `yaml:"attribute"`
	Phase     EliminationPhase `yaml:"phase"`
	Requested string           `yaml:"requested,omitempty"`
	Declared  string           `yaml:"declared,omitempty"`
}

// SelectedVariant describes one surviving candidate in a report.
type SelectedVariant struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// MatchReport is the persisted result of one match run.
type MatchReport struct {
	Outcome   MatchOutcome        `yaml:"outcome"`
	Requested map[string]string   `yaml:"requested,omitempty"`
	Selected  []SelectedVariant   `yaml:"selected,omitempty"`
	Trace     []EliminationRecord `yaml:"trace,omitempty"`
}
