package rules

import (
	"variant-match/internal/ports"
	"variant-match/internal/types"
)

// Equivalence is a compatibility table: for a requested value listed
// in the table, the candidate is compatible when it equals the request
// or appears in the accepted set, and incompatible otherwise. Requests
// outside the table, and absent values, leave the rule undecided.
type Equivalence struct {
	accepted map[types.Value]map[types.Value]struct{}
}

// NewEquivalence builds the rule from a requested-value to
// accepted-candidate-values table.
func NewEquivalence(table map[types.Value][]types.Value) Equivalence {
	accepted := make(map[types.Value]map[types.Value]struct{}, len(table))
	for requested, values := range table {
		set := make(map[types.Value]struct{}, len(values))
		for _, value := range values {
			set[value] = struct{}{}
		}
		accepted[requested] = set
	}
	return Equivalence{accepted: accepted}
}

func (Equivalence) Describe() string {
	return "equivalence"
}

func (r Equivalence) Eval(requested types.Value, hasRequested bool, candidate types.Value, hasCandidate bool) (types.Decision, error) {
	if !hasRequested || !hasCandidate {
		return types.DecisionUndecided, nil
	}
	set, ok := r.accepted[requested]
	if !ok {
		return types.DecisionUndecided, nil
	}
	if requested == candidate {
		return types.DecisionCompatible, nil
	}
	if _, ok := set[candidate]; ok {
		return types.DecisionCompatible, nil
	}
	return types.DecisionIncompatible, nil
}

var _ ports.CompatibilityRule = Equivalence{}
