package ports

import "variant-match/internal/types"

// CompatibilityRule decides whether a candidate's value for one
// attribute is acceptable given the requested value. Rules must be
// pure: no external mutable state, safe for concurrent use across
// match calls. The has* flags distinguish an absent value from a zero
// value; a rule is still consulted when either side is absent so it
// may reject a candidate value outright. Returning DecisionUndecided
// passes the question to the next rule in the chain.
type CompatibilityRule interface {
	Describe() string
	Eval(requested types.Value, hasRequested bool, candidate types.Value, hasCandidate bool) (types.Decision, error)
}

// DisambiguationRule narrows a set of distinct candidate values down
// to the "closest" ones relative to the requested value. The decided
// flag distinguishes "no opinion" (chain continues) from a definite
// selection. A decided selection must be a non-empty subset of the
// input values; rules share the purity contract of CompatibilityRule.
type DisambiguationRule interface {
	Describe() string
	Select(requested types.Value, hasRequested bool, candidates []types.Value) (closest []types.Value, decided bool, err error)
}

// ExplanationSink receives the elimination trace during a match. It is
// write-only: implementations must not influence the match outcome.
type ExplanationSink interface {
	Record(record types.EliminationRecord)
}
