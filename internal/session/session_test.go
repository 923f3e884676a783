package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pl9ed/wordle-solver/internal/solver"
)

var miniBank = []string{"RAISE", "ROUND", "RATIO", "RADIO", "RAPID"}

func TestNewSessionStartsWithFullBank(t *testing.T) {
	s := New(miniBank)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, len(miniBank), s.Remaining())
	assert.Equal(t, StateSolving, s.State())
}

func TestApplyNarrowsPool(t *testing.T) {
	s := New(miniBank)

	p, err := solver.Evaluate("RAISE", "RATIO")
	require.NoError(t, err)

	remaining, state, err := s.Apply("raise", p)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)
	assert.Equal(t, StateSolving, state)
	assert.Equal(t, []string{"RATIO", "RADIO", "RAPID"}, s.Candidates())
}

func TestApplyToSolved(t *testing.T) {
	s := New(miniBank)

	p, err := solver.ParsePattern("GGGGG")
	require.NoError(t, err)

	remaining, state, err := s.Apply("RATIO", p)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, StateSolved, state)
	assert.Equal(t, []string{"RATIO"}, s.Candidates())
}

func TestApplyInconsistentFeedbackEmptiesPool(t *testing.T) {
	s := New(miniBank)

	// Every bank word starts with R, so "R scored gray" is impossible.
	p, err := solver.ParsePattern("XXXXX")
	require.NoError(t, err)

	remaining, state, err := s.Apply("RAISE", p)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, StateNoCandidates, state)

	// Applying past an empty pool is a caller bug.
	_, _, err = s.Apply("ROUND", p)
	assert.Error(t, err)
}

func TestApplyRejectsMalformedGuess(t *testing.T) {
	s := New(miniBank)
	_, _, err := s.Apply("TOOLONGWORD", solver.Pattern{})
	require.ErrorIs(t, err, solver.ErrInvalidArgument)
	assert.Equal(t, len(miniBank), s.Remaining(), "pool must be untouched on error")
}

func TestApplyDoesNotMutatePriorSnapshot(t *testing.T) {
	s := New(miniBank)
	before := s.Candidates()

	p, err := solver.Evaluate("RAISE", "RATIO")
	require.NoError(t, err)
	_, _, err = s.Apply("RAISE", p)
	require.NoError(t, err)

	assert.Len(t, before, len(miniBank), "old snapshot keeps its contents")
}

func TestRecommendReportsCandidateFlag(t *testing.T) {
	s := New(miniBank)

	p, err := solver.Evaluate("RAISE", "RATIO")
	require.NoError(t, err)
	_, _, err = s.Apply("RAISE", p)
	require.NoError(t, err)

	rec, err := s.Recommend()
	require.NoError(t, err)
	assert.Contains(t, s.Bank(), rec.Word)
	if rec.IsCandidate {
		assert.Contains(t, s.Candidates(), rec.Word)
	} else {
		assert.NotContains(t, s.Candidates(), rec.Word)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		s := New(miniBank)
		_, dup := seen[s.ID]
		require.False(t, dup)
		seen[s.ID] = struct{}{}
	}
}
