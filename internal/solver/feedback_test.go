package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateExactMatch(t *testing.T) {
	p, err := Evaluate("CRANE", "CRANE")
	require.NoError(t, err)
	assert.True(t, p.AllHit())
	assert.Equal(t, "GGGGG", p.String())
}

func TestEvaluateIsDeterministic(t *testing.T) {
	first, err := Evaluate("SLATE", "CRANE")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Evaluate("SLATE", "CRANE")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluateDuplicateLetters(t *testing.T) {
	// ABIDE has one B: the first B in ABBEY is a hit, the second must not
	// double-count. ABIDE's unmatched E makes ABBEY's E a present.
	p, err := Evaluate("ABBEY", "ABIDE")
	require.NoError(t, err)
	assert.Equal(t, Pattern{MarkHit, MarkHit, MarkMiss, MarkPresent, MarkMiss}, p)

	// HELLO has two L's but only one E; the guess's second E gets nothing.
	p, err = Evaluate("LEVEL", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, Pattern{MarkPresent, MarkHit, MarkMiss, MarkMiss, MarkPresent}, p)
}

func TestEvaluateLeftToRightConsumption(t *testing.T) {
	// RATIO's unmatched I is claimed by the guess's position-2 I.
	p, err := Evaluate("RAISE", "RATIO")
	require.NoError(t, err)
	assert.Equal(t, "GGYXX", p.String())
}

func TestEvaluateRejectsWrongLength(t *testing.T) {
	_, err := Evaluate("CRANES", "CRANE")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Evaluate("CRANE", "CRAN")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEvaluateRejectsNonLetters(t *testing.T) {
	_, err := Evaluate("CR4NE", "CRANE")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Evaluate("CRANE", "crane")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("GYXXG")
	require.NoError(t, err)
	assert.Equal(t, Pattern{MarkHit, MarkPresent, MarkMiss, MarkMiss, MarkHit}, p)
	assert.Equal(t, "GYXXG", p.String())

	// case-insensitive
	lower, err := ParsePattern("gyxxg")
	require.NoError(t, err)
	assert.Equal(t, p, lower)

	_, err = ParsePattern("GYX")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParsePattern("GYXXZ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
