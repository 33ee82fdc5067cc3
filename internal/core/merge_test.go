package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-match/internal/types"
)

// alwaysCompatible marks every pairing compatible, which makes it easy
// to observe whose rules won a merge.
type alwaysCompatible struct{ name string }

func (r alwaysCompatible) Describe() string { return r.name }

func (r alwaysCompatible) Eval(types.Value, bool, types.Value, bool) (types.Decision, error) {
	return types.DecisionCompatible, nil
}

func TestMergeConsumerRulesWin(t *testing.T) {
	attr := types.StringAttribute("platform")

	consumer := NewSchema()
	slot, err := consumer.Attribute(attr)
	require.NoError(t, err)
	slot.AddCompatibility(alwaysCompatible{name: "consumer"})

	producer := NewSchema()
	slot, err = producer.Attribute(attr)
	require.NoError(t, err)
	slot.AddCompatibility(alwaysCompatible{name: "producer"})

	eff, err := Merge(consumer, producer)
	require.NoError(t, err)

	merged := eff.slotNamed("platform")
	require.NotNil(t, merged)
	require.Len(t, merged.compatibility, 1)
	assert.Equal(t, "consumer", merged.compatibility[0].Describe())
}

func TestMergeFallsBackToProducerRules(t *testing.T) {
	attr := types.StringAttribute("platform")

	// The consumer knows the attribute but declares no rules for it.
	consumer := NewSchema()
	_, err := consumer.Attribute(attr)
	require.NoError(t, err)

	producer := NewSchema()
	slot, err := producer.Attribute(attr)
	require.NoError(t, err)
	slot.AddCompatibility(alwaysCompatible{name: "producer"})

	eff, err := Merge(consumer, producer)
	require.NoError(t, err)

	merged := eff.slotNamed("platform")
	require.NotNil(t, merged)
	require.Len(t, merged.compatibility, 1)
	assert.Equal(t, "producer", merged.compatibility[0].Describe())
}

func TestMergeUnionsAttributes(t *testing.T) {
	consumer := NewSchema()
	_, err := consumer.Attribute(types.StringAttribute("packaging"))
	require.NoError(t, err)

	producer := NewSchema()
	_, err = producer.Attribute(types.StringAttribute("platform"))
	require.NoError(t, err)

	eff, err := Merge(consumer, producer)
	require.NoError(t, err)
	if diff := cmp.Diff(
		[]types.Attribute{types.StringAttribute("packaging"), types.StringAttribute("platform")},
		eff.Attributes(),
	); diff != "" {
		t.Fatalf("unexpected attributes (-want +got):\n%s", diff)
	}
}

func TestMergePrecedenceFromConsumerOnly(t *testing.T) {
	a := types.StringAttribute("a")
	b := types.StringAttribute("b")

	consumer := NewSchema()
	for _, attr := range []types.Attribute{a, b} {
		_, err := consumer.Attribute(attr)
		require.NoError(t, err)
	}
	require.NoError(t, consumer.DeclarePrecedence(a))

	producer := NewSchema()
	for _, attr := range []types.Attribute{a, b} {
		_, err := producer.Attribute(attr)
		require.NoError(t, err)
	}
	require.NoError(t, producer.DeclarePrecedence(b, a))

	eff, err := Merge(consumer, producer)
	require.NoError(t, err)
	if diff := cmp.Diff([]types.Attribute{a}, eff.Precedence()); diff != "" {
		t.Fatalf("unexpected precedence (-want +got):\n%s", diff)
	}
}

func TestMergeKindConflictFails(t *testing.T) {
	consumer := NewSchema()
	_, err := consumer.Attribute(types.StringAttribute("api"))
	require.NoError(t, err)

	producer := NewSchema()
	_, err = producer.Attribute(types.VersionAttribute("api"))
	require.NoError(t, err)

	_, err = Merge(consumer, producer)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestMergeIsIdempotentUnderEquality(t *testing.T) {
	attr := types.StringAttribute("platform")
	consumer := NewSchema()
	slot, err := consumer.Attribute(attr)
	require.NoError(t, err)
	slot.AddCompatibility(alwaysCompatible{name: "consumer"})
	require.NoError(t, consumer.DeclarePrecedence(attr))

	producer := NewSchema()
	_, err = producer.Attribute(types.StringAttribute("packaging"))
	require.NoError(t, err)

	first, err := Merge(consumer, producer)
	require.NoError(t, err)
	second, err := Merge(consumer, producer)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Attributes(), second.Attributes()); diff != "" {
		t.Fatalf("attribute sets differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Precedence(), second.Precedence()); diff != "" {
		t.Fatalf("precedence differs (-first +second):\n%s", diff)
	}
	assert.Same(t, first.slotNamed("platform"), second.slotNamed("platform"))
}

func TestMergeWithNilInputs(t *testing.T) {
	eff, err := Merge(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, eff.Attributes())
	assert.Empty(t, eff.Precedence())
}
