package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"variant-match/internal/types"
)

// The default rule backs every attribute whose chain leaves a question
// undecided, including attributes with no registered rules at all:
// absence on either side is compatible, equal values are compatible,
// unequal present values are not. The default never disambiguates.
func defaultCompatibility(requested types.Value, hasRequested bool, candidate types.Value, hasCandidate bool) types.Decision {
	if !hasRequested || !hasCandidate {
		return types.DecisionCompatible
	}
	if requested == candidate {
		return types.DecisionCompatible
	}
	return types.DecisionIncompatible
}

// checkCompatibility runs the attribute's compatibility chain and
// falls back to the default rule. A rule failure surfaces as a rule
// evaluation error carrying the rule identity and attribute name.
func checkCompatibility(slot *RuleSlot, attr types.Attribute, requested types.Value, hasRequested bool, candidate types.Value, hasCandidate bool) (bool, error) {
	if slot != nil {
		for _, rule := range slot.compatibility {
			decision, err := rule.Eval(requested, hasRequested, candidate, hasCandidate)
			if err != nil {
				return false, ruleEvaluationError("compatibility", rule.Describe(), attr, err)
			}
			switch decision {
			case types.DecisionCompatible:
				return true, nil
			case types.DecisionIncompatible:
				return false, nil
			}
		}
	}
	return defaultCompatibility(requested, hasRequested, candidate, hasCandidate) == types.DecisionCompatible, nil
}

// selectClosest runs the attribute's disambiguation chain over the
// distinct candidate values. The chain is undecided when no rule forms
// an opinion; a decided empty subset violates the rule contract and is
// reported as a rule evaluation error rather than silently emptying
// the surviving set.
func selectClosest(slot *RuleSlot, attr types.Attribute, requested types.Value, hasRequested bool, values []types.Value) ([]types.Value, bool, error) {
	if slot == nil {
		return nil, false, nil
	}
	for _, rule := range slot.disambiguation {
		closest, decided, err := rule.Select(requested, hasRequested, values)
		if err != nil {
			return nil, false, ruleEvaluationError("disambiguation", rule.Describe(), attr, err)
		}
		if !decided {
			continue
		}
		if len(closest) == 0 {
			return nil, false, ruleEvaluationError("disambiguation", rule.Describe(), attr,
				fmt.Errorf("rule selected no value from a non-empty set"))
		}
		return closest, true, nil
	}
	return nil, false, nil
}

func ruleEvaluationError(phase string, rule string, attr types.Attribute, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s rule %s failed for attribute %s", phase, rule, attr.Name)).
		WithCause(cause)
}
