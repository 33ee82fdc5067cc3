package types

// Decision is a compatibility rule's verdict for one attribute. Rules
// are chained: the first rule to produce a definite answer wins, and
// an undecided chain falls back to the default rule.
type Decision string

const (
	DecisionUndecided    Decision = ""
	DecisionCompatible   Decision = "compatible"
	DecisionIncompatible Decision = "incompatible"
)

// MatchOutcome classifies a match result by survivor count. Zero and
// many survivors are ordinary results here; turning them into failures
// is the caller's responsibility.
type MatchOutcome string

const (
	MatchOutcomeNone      MatchOutcome = "none"
	MatchOutcomeSelected  MatchOutcome = "selected"
	MatchOutcomeAmbiguous MatchOutcome = "ambiguous"
)

// OutcomeFor maps a survivor count to its outcome.
func OutcomeFor(survivors int) MatchOutcome {
	switch {
	case survivors == 0:
		return MatchOutcomeNone
	case survivors == 1:
		return MatchOutcomeSelected
	default:
		return MatchOutcomeAmbiguous
	}
}
