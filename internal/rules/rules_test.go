package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variant-match/internal/types"
)

func TestExactMatch(t *testing.T) {
	rule := NewExactMatch()

	tests := []struct {
		name         string
		requested    types.Value
		hasRequested bool
		candidate    types.Value
		hasCandidate bool
		want         types.Decision
	}{
		{"equal values", types.StringValue("linux"), true, types.StringValue("linux"), true, types.DecisionCompatible},
		{"unequal values", types.StringValue("linux"), true, types.StringValue("darwin"), true, types.DecisionIncompatible},
		{"absent request", types.Value{}, false, types.StringValue("linux"), true, types.DecisionUndecided},
		{"absent candidate", types.StringValue("linux"), true, types.Value{}, false, types.DecisionUndecided},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.Eval(tt.requested, tt.hasRequested, tt.candidate, tt.hasCandidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEquivalence(t *testing.T) {
	rule := NewEquivalence(map[types.Value][]types.Value{
		types.StringValue("java-17"): {types.StringValue("java-11"), types.StringValue("java-8")},
	})

	t.Run("requested value itself is compatible", func(t *testing.T) {
		got, err := rule.Eval(types.StringValue("java-17"), true, types.StringValue("java-17"), true)
		require.NoError(t, err)
		assert.Equal(t, types.DecisionCompatible, got)
	})

	t.Run("accepted value is compatible", func(t *testing.T) {
		got, err := rule.Eval(types.StringValue("java-17"), true, types.StringValue("java-11"), true)
		require.NoError(t, err)
		assert.Equal(t, types.DecisionCompatible, got)
	})

	t.Run("unlisted value is incompatible", func(t *testing.T) {
		got, err := rule.Eval(types.StringValue("java-17"), true, types.StringValue("java-21"), true)
		require.NoError(t, err)
		assert.Equal(t, types.DecisionIncompatible, got)
	})

	t.Run("request outside the table is undecided", func(t *testing.T) {
		got, err := rule.Eval(types.StringValue("java-8"), true, types.StringValue("java-11"), true)
		require.NoError(t, err)
		assert.Equal(t, types.DecisionUndecided, got)
	})

	t.Run("absent sides are undecided", func(t *testing.T) {
		got, err := rule.Eval(types.Value{}, false, types.StringValue("java-11"), true)
		require.NoError(t, err)
		assert.Equal(t, types.DecisionUndecided, got)
	})
}

func TestPrefer(t *testing.T) {
	rule := NewPrefer([]types.Value{types.StringValue("shadowed"), types.StringValue("jar")})

	t.Run("first present preference wins", func(t *testing.T) {
		closest, decided, err := rule.Select(types.Value{}, false, []types.Value{
			types.StringValue("jar"),
			types.StringValue("classes"),
		})
		require.NoError(t, err)
		require.True(t, decided)
		assert.Equal(t, []types.Value{types.StringValue("jar")}, closest)
	})

	t.Run("preference order beats candidate order", func(t *testing.T) {
		closest, decided, err := rule.Select(types.Value{}, false, []types.Value{
			types.StringValue("jar"),
			types.StringValue("shadowed"),
		})
		require.NoError(t, err)
		require.True(t, decided)
		assert.Equal(t, []types.Value{types.StringValue("shadowed")}, closest)
	})

	t.Run("no preference present stays undecided", func(t *testing.T) {
		_, decided, err := rule.Select(types.Value{}, false, []types.Value{types.StringValue("classes")})
		require.NoError(t, err)
		assert.False(t, decided)
	})
}

func TestKeepRequested(t *testing.T) {
	rule := NewKeepRequested()

	t.Run("keeps requested value when present", func(t *testing.T) {
		closest, decided, err := rule.Select(types.StringValue("jar"), true, []types.Value{
			types.StringValue("classes"),
			types.StringValue("jar"),
		})
		require.NoError(t, err)
		require.True(t, decided)
		assert.Equal(t, []types.Value{types.StringValue("jar")}, closest)
	})

	t.Run("undecided when requested value absent from set", func(t *testing.T) {
		_, decided, err := rule.Select(types.StringValue("war"), true, []types.Value{types.StringValue("jar")})
		require.NoError(t, err)
		assert.False(t, decided)
	})

	t.Run("undecided without a requested value", func(t *testing.T) {
		_, decided, err := rule.Select(types.Value{}, false, []types.Value{types.StringValue("jar")})
		require.NoError(t, err)
		assert.False(t, decided)
	})
}
