package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var miniBank = []string{"RAISE", "ROUND", "RATIO", "RADIO", "RAPID"}

func TestFilterKeepsTrueSolution(t *testing.T) {
	// The true solution is never filtered out by its own truthful feedback.
	for _, guess := range miniBank {
		for _, solution := range miniBank {
			p, err := Evaluate(guess, solution)
			require.NoError(t, err)
			out, err := Filter(guess, p, miniBank)
			require.NoError(t, err)
			assert.Contains(t, out, solution, "guess %s, solution %s", guess, solution)
		}
	}
}

func TestFilterMiniBankScenario(t *testing.T) {
	// Hidden solution RATIO, opening guess RAISE: exactly the three
	// R-A-...-I words survive.
	p, err := Evaluate("RAISE", "RATIO")
	require.NoError(t, err)

	out, err := Filter("RAISE", p, miniBank)
	require.NoError(t, err)
	assert.Equal(t, []string{"RATIO", "RADIO", "RAPID"}, out)
}

func TestFilterOutputIsSubset(t *testing.T) {
	p, err := Evaluate("ROUND", "RAPID")
	require.NoError(t, err)

	out, err := Filter("ROUND", p, miniBank)
	require.NoError(t, err)

	set := make(map[string]struct{}, len(miniBank))
	for _, w := range miniBank {
		set[w] = struct{}{}
	}
	for _, w := range out {
		_, ok := set[w]
		assert.True(t, ok, "%s not in input pool", w)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	pool := append([]string{}, miniBank...)
	p, err := Evaluate("RAISE", "RATIO")
	require.NoError(t, err)

	_, err = Filter("RAISE", p, pool)
	require.NoError(t, err)
	assert.Equal(t, miniBank, pool)
}

func TestFilterCanEmpty(t *testing.T) {
	// All-hit feedback for a word outside the pool leaves nothing.
	out, err := Filter("QUERY", Pattern{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit}, miniBank)
	require.NoError(t, err)
	assert.Empty(t, out)
}
