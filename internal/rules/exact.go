// Package rules provides the built-in compatibility and disambiguation
// rule implementations and the registry that binds schema documents to
// them. Every rule here is stateless and safe for concurrent use.
package rules

import (
	"variant-match/internal/ports"
	"variant-match/internal/types"
)

// ExactMatch accepts a candidate value only when it equals the
// requested value. It stays undecided when either side is absent, so
// chained rules or the default rule handle sparse containers.
type ExactMatch struct{}

func NewExactMatch() ExactMatch {
	return ExactMatch{}
}

func (ExactMatch) Describe() string {
	return "exact"
}

func (ExactMatch) Eval(requested types.Value, hasRequested bool, candidate types.Value, hasCandidate bool) (types.Decision, error) {
	if !hasRequested || !hasCandidate {
		return types.DecisionUndecided, nil
	}
	if requested == candidate {
		return types.DecisionCompatible, nil
	}
	return types.DecisionIncompatible, nil
}

var _ ports.CompatibilityRule = ExactMatch{}
