package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"variant-match/internal/types"
)

// Effective is the merged rule set actually used for one match. It is
// a pure projection of a consumer and a producer schema: per attribute
// the consumer's rules win when declared, otherwise the producer's are
// used, and the precedence order comes from the consumer only. An
// Effective value is immutable and safe to share.
type Effective struct {
	attrs      map[string]types.Attribute
	slots      map[string]*RuleSlot
	precedence []types.Attribute
}

// Merge combines a consumer and a producer schema. Either input may be
// nil, standing for an empty schema. Merging never mutates its inputs
// and yields structurally equal results for equal inputs, so callers
// may cache the projection. The same attribute name declared with
// different kinds on the two sides is a configuration error.
func Merge(consumer *Schema, producer *Schema) (Effective, error) {
	if consumer == nil {
		consumer = NewSchema()
	}
	if producer == nil {
		producer = NewSchema()
	}
	eff := Effective{
		attrs: map[string]types.Attribute{},
		slots: map[string]*RuleSlot{},
	}
	for _, attr := range consumer.Attributes() {
		slot, _ := consumer.slotFor(attr.Name)
		eff.attrs[attr.Name] = attr
		eff.slots[attr.Name] = slot
	}
	for _, attr := range producer.Attributes() {
		if known, ok := eff.attrs[attr.Name]; ok {
			if known.Kind != attr.Kind {
				return Effective{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("attribute %s declared as %s by consumer and %s by producer", attr.Name, known.Kind, attr.Kind))
			}
			// Consumer declares the attribute; its rules win as soon
			// as it has any. An empty consumer slot defers to the
			// producer side.
			if slot := eff.slots[attr.Name]; slot != nil && slot.hasRules() {
				continue
			}
		}
		if slot, ok := producer.slotFor(attr.Name); ok && slot.hasRules() {
			eff.attrs[attr.Name] = attr
			eff.slots[attr.Name] = slot
		} else if _, ok := eff.attrs[attr.Name]; !ok {
			eff.attrs[attr.Name] = attr
			eff.slots[attr.Name] = slot
		}
	}
	eff.precedence = consumer.Precedence()
	return eff, nil
}

// AttributeNamed resolves a name against the merged attribute set.
func (e Effective) AttributeNamed(name string) (types.Attribute, bool) {
	attr, ok := e.attrs[name]
	return attr, ok
}

// Attributes returns the merged attributes sorted by name.
func (e Effective) Attributes() []types.Attribute {
	out := make([]types.Attribute, 0, len(e.attrs))
	for _, attr := range e.attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// AttributeMap returns a copy of the name-to-attribute mapping, in the
// shape the candidate source port expects.
func (e Effective) AttributeMap() map[string]types.Attribute {
	out := make(map[string]types.Attribute, len(e.attrs))
	for name, attr := range e.attrs {
		out[name] = attr
	}
	return out
}

// Precedence returns the consumer-declared order, highest first.
func (e Effective) Precedence() []types.Attribute {
	return append([]types.Attribute(nil), e.precedence...)
}

func (e Effective) slotNamed(name string) *RuleSlot {
	return e.slots[name]
}
