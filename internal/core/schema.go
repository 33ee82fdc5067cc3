package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"variant-match/internal/ports"
	"variant-match/internal/types"
)

// RuleSlot holds the rule chains registered for one attribute. Rules
// run in registration order; the first definite answer wins and an
// undecided chain falls back to the default rule.
type RuleSlot struct {
	attr           types.Attribute
	compatibility  []ports.CompatibilityRule
	disambiguation []ports.DisambiguationRule
}

// Attribute returns the attribute this slot belongs to.
func (s *RuleSlot) Attribute() types.Attribute {
	return s.attr
}

// AddCompatibility appends a compatibility rule to the chain.
func (s *RuleSlot) AddCompatibility(rule ports.CompatibilityRule) *RuleSlot {
	s.compatibility = append(s.compatibility, rule)
	return s
}

// AddDisambiguation appends a disambiguation rule to the chain.
func (s *RuleSlot) AddDisambiguation(rule ports.DisambiguationRule) *RuleSlot {
	s.disambiguation = append(s.disambiguation, rule)
	return s
}

func (s *RuleSlot) hasRules() bool {
	return len(s.compatibility) > 0 || len(s.disambiguation) > 0
}

// Schema is the registry mapping each known attribute to its rule
// slot, plus the declared disambiguation precedence. Schemas are built
// once during the configuration phase and must be treated as read-only
// afterwards; concurrent Match calls over a sealed schema need no
// locking.
type Schema struct {
	slots           map[string]*RuleSlot
	order           []types.Attribute
	precedence      []types.Attribute
	precedenceIndex map[string]int
}

func NewSchema() *Schema {
	return &Schema{
		slots:           map[string]*RuleSlot{},
		precedenceIndex: map[string]int{},
	}
}

// Attribute registers the attribute if unknown and returns its rule
// slot. Registering the same name with a different kind is a
// configuration error.
func (s *Schema) Attribute(attr types.Attribute) (*RuleSlot, error) {
	if slot, ok := s.slots[attr.Name]; ok {
		if slot.attr.Kind != attr.Kind {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("attribute %s already registered with kind %s", attr.Name, slot.attr.Kind))
		}
		return slot, nil
	}
	slot := &RuleSlot{attr: attr}
	s.slots[attr.Name] = slot
	s.order = append(s.order, attr)
	return slot, nil
}

// DeclarePrecedence sets or extends the disambiguation order, highest
// precedence first. Repeated declarations may restate a consistent
// prefix; an attribute appearing twice in one call, ordered elsewhere
// in a conflicting position, or not registered at all is a
// configuration error.
func (s *Schema) DeclarePrecedence(attrs ...types.Attribute) error {
	seen := map[string]struct{}{}
	last := -1
	for _, attr := range attrs {
		if _, dup := seen[attr.Name]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("attribute %s appears twice in precedence declaration", attr.Name))
		}
		seen[attr.Name] = struct{}{}
		if _, ok := s.slots[attr.Name]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("precedence declared for unregistered attribute %s", attr.Name))
		}
		if idx, ok := s.precedenceIndex[attr.Name]; ok {
			if idx <= last {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("attribute %s already ordered at a conflicting position", attr.Name))
			}
			last = idx
			continue
		}
		pos := last + 1
		s.precedence = append(s.precedence, types.Attribute{})
		copy(s.precedence[pos+1:], s.precedence[pos:])
		s.precedence[pos] = attr
		last = pos
		s.reindexPrecedence()
	}
	return nil
}

func (s *Schema) reindexPrecedence() {
	s.precedenceIndex = make(map[string]int, len(s.precedence))
	for idx, attr := range s.precedence {
		s.precedenceIndex[attr.Name] = idx
	}
}

// Attributes returns the registered attributes sorted by name.
func (s *Schema) Attributes() []types.Attribute {
	out := append([]types.Attribute(nil), s.order...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Precedence returns the declared order, highest precedence first.
func (s *Schema) Precedence() []types.Attribute {
	return append([]types.Attribute(nil), s.precedence...)
}

func (s *Schema) slotFor(name string) (*RuleSlot, bool) {
	slot, ok := s.slots[name]
	return slot, ok
}
