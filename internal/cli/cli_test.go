package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pl9ed/wordle-solver/internal/solver"
)

var miniBank = []string{"RAISE", "ROUND", "RATIO", "RADIO", "RAPID"}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	openings := []solver.Opening{{Word: "RAISE", Score: 2.2}}
	Run(miniBank, openings, strings.NewReader(input), &out)
	return out.String()
}

func TestRunSolvesScriptedGame(t *testing.T) {
	// Hidden solution RATIO: RAISE scores GGYXX, then RATIO all green.
	out := run(t, "RAISE\nGGYXX\nRATIO\nGGGGG\n")

	assert.Contains(t, out, "Optimal starting words:")
	assert.Contains(t, out, "Suggested starting word: RAISE")
	assert.Contains(t, out, "Possible candidates (3)")
	assert.Contains(t, out, "Recommended guess:")
	assert.Contains(t, out, "Solved! The word is RATIO.")
}

func TestRunExitCommand(t *testing.T) {
	out := run(t, "exit\n")
	assert.Contains(t, out, "Exiting.")
}

func TestRunStopsOnEOF(t *testing.T) {
	out := run(t, "")
	assert.Contains(t, out, "Exiting.")
}

func TestRunNextResetsPool(t *testing.T) {
	out := run(t, "RAISE\nGGYXX\nnext\nexit\n")
	assert.Contains(t, out, "Possible candidates (3)")
	assert.Contains(t, out, "New game started. Loaded 5 words.")
}

func TestRunRejectsInvalidInput(t *testing.T) {
	out := run(t, "TOOLONGWORD\nRAISE\nGREAT\nexit\n")
	assert.Contains(t, out, "Invalid guess.")
	assert.Contains(t, out, "Invalid feedback.")
}

func TestRunReportsNoCandidates(t *testing.T) {
	// Every bank word starts with R; an all-gray RAISE is inconsistent.
	out := run(t, "RAISE\nXXXXX\n")
	assert.Contains(t, out, "No candidates remain.")
}
