package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"variant-match/internal/ports"
	"variant-match/internal/types"
)

// MatcherCore runs the ordered-elimination algorithm: a compatibility
// filter over every participating attribute, then precedence-ordered
// disambiguation that only ever shrinks the surviving set. Match is a
// pure, bounded computation over its inputs; concurrent calls over the
// same sealed schema are safe.
type MatcherCore struct {
	// Trace, when set, receives one record per eliminated candidate.
	// It never influences the outcome.
	Trace ports.ExplanationSink
}

func NewMatcherCore() MatcherCore {
	return MatcherCore{}
}

// Match returns the candidates that survive compatibility filtering
// and disambiguation, in input order. Zero survivors means no
// compatible variant, more than one means the caller must resolve the
// ambiguity externally.
func (m MatcherCore) Match(ctx context.Context, eff Effective, requested types.Container, candidates []types.Candidate) ([]types.Candidate, error) {
	attrs := participatingAttributes(eff, requested, candidates)

	surviving, err := m.filterCompatible(eff, attrs, requested, candidates)
	if err != nil {
		return nil, err
	}
	if len(surviving) == 0 {
		log.Ctx(ctx).Debug().Int("candidates", len(candidates)).Msg("no compatible candidates")
		return nil, nil
	}

	surviving, err = m.disambiguate(eff, attrs, requested, surviving)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().
		Int("candidates", len(candidates)).
		Int("surviving", len(surviving)).
		Msg("match completed")
	return surviving, nil
}

// participatingAttributes is the union of attributes present on the
// request or on any candidate, resolved against the effective schema
// so registered kinds win over ad-hoc declarations. Sorted by name for
// deterministic rule invocation order.
func participatingAttributes(eff Effective, requested types.Container, candidates []types.Candidate) []types.Attribute {
	byName := map[string]types.Attribute{}
	collect := func(container types.Container) {
		for _, attr := range container.Attributes() {
			if known, ok := eff.AttributeNamed(attr.Name); ok {
				byName[attr.Name] = known
				continue
			}
			byName[attr.Name] = attr
		}
	}
	collect(requested)
	for _, candidate := range candidates {
		collect(candidate.Attributes)
	}
	out := make([]types.Attribute, 0, len(byName))
	for _, attr := range byName {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func (m MatcherCore) filterCompatible(eff Effective, attrs []types.Attribute, requested types.Container, candidates []types.Candidate) ([]types.Candidate, error) {
	var surviving []types.Candidate
	for _, candidate := range candidates {
		compatible := true
		for _, attr := range attrs {
			requestedValue, hasRequested := requested.Get(attr)
			candidateValue, hasCandidate := candidate.Attributes.Get(attr)
			ok, err := checkCompatibility(eff.slotNamed(attr.Name), attr, requestedValue, hasRequested, candidateValue, hasCandidate)
			if err != nil {
				return nil, err
			}
			if !ok {
				m.record(types.EliminationRecord{
					Candidate: candidate.ID,
					Attribute: attr.Name,
					Phase:     types.PhaseCompatibility,
					Requested: renderIfPresent(requestedValue, hasRequested),
					Declared:  renderIfPresent(candidateValue, hasCandidate),
				})
				compatible = false
				break
			}
		}
		if compatible {
			surviving = append(surviving, candidate)
		}
	}
	return surviving, nil
}

// disambiguate processes attributes in declared precedence order,
// highest first, then the unordered remainder in name order. Each step
// is monotonic and never reduces the surviving set to zero.
func (m MatcherCore) disambiguate(eff Effective, attrs []types.Attribute, requested types.Container, surviving []types.Candidate) ([]types.Candidate, error) {
	for _, attr := range disambiguationOrder(eff, attrs) {
		if len(surviving) < 2 {
			break
		}
		slot := eff.slotNamed(attr.Name)
		if slot == nil || len(slot.disambiguation) == 0 {
			continue
		}

		distinct := distinctValues(attr, surviving)
		if len(distinct) < 2 {
			continue
		}

		requestedValue, hasRequested := requested.Get(attr)
		closest, decided, err := selectClosest(slot, attr, requestedValue, hasRequested, distinct)
		if err != nil {
			return nil, err
		}
		if !decided {
			continue
		}

		keep := make(map[types.Value]struct{}, len(closest))
		for _, value := range closest {
			keep[value] = struct{}{}
		}

		// Candidates lacking the attribute are untouched by this step.
		var next []types.Candidate
		var eliminated []types.EliminationRecord
		for _, candidate := range surviving {
			value, has := candidate.Attributes.Get(attr)
			if !has {
				next = append(next, candidate)
				continue
			}
			if _, ok := keep[value]; ok {
				next = append(next, candidate)
				continue
			}
			eliminated = append(eliminated, types.EliminationRecord{
				Candidate: candidate.ID,
				Attribute: attr.Name,
				Phase:     types.PhaseDisambiguation,
				Requested: renderIfPresent(requestedValue, hasRequested),
				Declared:  value.Render(),
			})
		}
		// An elimination that would empty the set is skipped: the
		// compatibility filter's result is a floor.
		if len(next) == 0 {
			continue
		}
		for _, record := range eliminated {
			m.record(record)
		}
		surviving = next
	}
	return surviving, nil
}

// disambiguationOrder is the schema precedence followed by the
// remaining participating attributes as one unordered group, kept in
// name order so traces are stable.
func disambiguationOrder(eff Effective, attrs []types.Attribute) []types.Attribute {
	ordered := map[string]struct{}{}
	var out []types.Attribute
	for _, attr := range eff.Precedence() {
		ordered[attr.Name] = struct{}{}
		out = append(out, attr)
	}
	for _, attr := range attrs {
		if _, ok := ordered[attr.Name]; ok {
			continue
		}
		out = append(out, attr)
	}
	return out
}

func distinctValues(attr types.Attribute, candidates []types.Candidate) []types.Value {
	seen := map[types.Value]struct{}{}
	var out []types.Value
	for _, candidate := range candidates {
		value, ok := candidate.Attributes.Get(attr)
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Render() < out[j].Render()
	})
	return out
}

func renderIfPresent(value types.Value, present bool) string {
	if !present {
		return ""
	}
	return value.Render()
}

func (m MatcherCore) record(record types.EliminationRecord) {
	if m.Trace == nil {
		return
	}
	m.Trace.Record(record)
}
