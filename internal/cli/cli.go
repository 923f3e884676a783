// internal/cli/cli.go
//
// Interactive read-eval loop for the solver.
// The player relays each guess they made and the G/Y/X feedback the game
// gave; the loop narrows the pool and recommends the next guess.
//
// Commands (in place of a guess):
//   exit  quit the program
//   next  reset the pool and start a new game
//
// All solver failures surface here as messages; the loop itself never
// terminates on bad input, only on exit/EOF or a finished game.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pl9ed/wordle-solver/internal/session"
	"github.com/pl9ed/wordle-solver/internal/solver"
)

// maxShown caps how many candidates are printed after each filter step.
const maxShown = 5

// Run drives the interactive loop over bank until the game is solved,
// no candidates remain, or the player exits. openings is the precomputed
// opener list shown at startup (may be empty).
func Run(bank []string, openings []solver.Opening, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	printOpenings(out, openings)

	sess := session.New(bank)

	for {
		guess, action := readGuess(sc, out)
		switch action {
		case actionExit:
			fmt.Fprintln(out, "Exiting.")
			return
		case actionNewGame:
			sess = session.New(bank)
			fmt.Fprintf(out, "New game started. Loaded %d words.\n", len(bank))
			printOpenings(out, openings)
			continue
		case actionInvalid:
			continue
		}

		pattern, ok := readFeedback(sc, out)
		if !ok {
			continue
		}

		remaining, state, err := sess.Apply(guess, pattern)
		if err != nil {
			fmt.Fprintf(out, "Could not apply feedback: %v\n", err)
			continue
		}
		printCandidates(out, sess.Candidates(), remaining)

		switch state {
		case session.StateSolved:
			fmt.Fprintf(out, "Solved! The word is %s.\n", sess.Candidates()[0])
			return
		case session.StateNoCandidates:
			fmt.Fprintln(out, "No candidates remain. The word list may be incomplete, or some feedback was mistyped.")
			return
		}

		fmt.Fprintln(out, "Computing optimal guess, please wait...")
		rec, err := sess.Recommend()
		if err != nil {
			fmt.Fprintf(out, "Could not compute a recommendation: %v\n", err)
			continue
		}
		kind := "information-gathering guess"
		if rec.IsCandidate {
			kind = "solution candidate"
		}
		fmt.Fprintf(out, "Recommended guess: %s (%s, expected pool %.2f)\n", rec.Word, kind, rec.ExpectedPoolSize)
	}
}

// loop actions produced by readGuess.
type action int

const (
	actionGuess action = iota
	actionExit
	actionNewGame
	actionInvalid
)

// readGuess prompts for and validates the next guess or command.
func readGuess(sc *bufio.Scanner, out io.Writer) (string, action) {
	fmt.Fprintf(out, "\nEnter your guess (%d letters, or 'exit' to quit, or 'next' to start a new game):\n", solver.WordLen)
	if !sc.Scan() {
		return "", actionExit
	}
	input := strings.ToUpper(strings.TrimSpace(sc.Text()))
	switch {
	case input == "EXIT":
		return "", actionExit
	case input == "NEXT":
		return "", actionNewGame
	case isValidWord(input):
		return input, actionGuess
	default:
		fmt.Fprintf(out, "Invalid guess. Please enter %d letters.\n", solver.WordLen)
		return "", actionInvalid
	}
}

// readFeedback prompts for and parses a G/Y/X feedback string.
func readFeedback(sc *bufio.Scanner, out io.Writer) (solver.Pattern, bool) {
	fmt.Fprintln(out, "Enter feedback (G=green, Y=yellow, X=gray, e.g. GYXXG):")
	if !sc.Scan() {
		return solver.Pattern{}, false
	}
	pattern, err := solver.ParsePattern(strings.TrimSpace(sc.Text()))
	if err != nil {
		fmt.Fprintf(out, "Invalid feedback. Please enter %d characters using G, Y, or X.\n", solver.WordLen)
		return solver.Pattern{}, false
	}
	return pattern, true
}

// printOpenings lists the precomputed openers and the suggested starter.
func printOpenings(out io.Writer, openings []solver.Opening) {
	if len(openings) == 0 {
		return
	}
	fmt.Fprintln(out, "Optimal starting words:")
	for i, o := range openings {
		fmt.Fprintf(out, "%d. %s (%.2f)\n", i+1, o.Word, o.Score)
	}
	fmt.Fprintf(out, "Suggested starting word: %s\n", openings[0].Word)
}

// printCandidates shows the pool size and up to maxShown members.
func printCandidates(out io.Writer, pool []string, remaining int) {
	fmt.Fprintf(out, "Possible candidates (%d)\n", remaining)
	for i, w := range pool {
		if i == maxShown {
			fmt.Fprintln(out, "...")
			break
		}
		fmt.Fprintln(out, w)
	}
}

// isValidWord reports whether w is exactly WordLen uppercase letters.
func isValidWord(w string) bool {
	if len(w) != solver.WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
