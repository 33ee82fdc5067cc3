package rules

import (
	"variant-match/internal/ports"
	"variant-match/internal/types"
)

// Prefer narrows to the first value of a fixed preference list that is
// present among the candidate values. When none of the preferred
// values is present the rule stays undecided.
type Prefer struct {
	ordered []types.Value
}

func NewPrefer(ordered []types.Value) Prefer {
	return Prefer{ordered: append([]types.Value(nil), ordered...)}
}

func (Prefer) Describe() string {
	return "prefer"
}

func (r Prefer) Select(_ types.Value, _ bool, candidates []types.Value) ([]types.Value, bool, error) {
	present := make(map[types.Value]struct{}, len(candidates))
	for _, value := range candidates {
		present[value] = struct{}{}
	}
	for _, preferred := range r.ordered {
		if _, ok := present[preferred]; ok {
			return []types.Value{preferred}, true, nil
		}
	}
	return nil, false, nil
}

var _ ports.DisambiguationRule = Prefer{}

// KeepRequested narrows to the requested value when it is itself among
// the candidate values; otherwise it stays undecided. Typically
// chained after Prefer.
type KeepRequested struct{}

func NewKeepRequested() KeepRequested {
	return KeepRequested{}
}

func (KeepRequested) Describe() string {
	return "requested"
}

func (KeepRequested) Select(requested types.Value, hasRequested bool, candidates []types.Value) ([]types.Value, bool, error) {
	if !hasRequested {
		return nil, false, nil
	}
	for _, value := range candidates {
		if value == requested {
			return []types.Value{requested}, true, nil
		}
	}
	return nil, false, nil
}

var _ ports.DisambiguationRule = KeepRequested{}
