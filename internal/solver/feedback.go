// internal/solver/feedback.go
//
// Feedback evaluation: what pattern would a guess receive against a
// hypothetical solution? This is the one place the matching rule is
// defined; the filter and the scorer both go through Evaluate so that
// "consistent with observed feedback" means exactly one thing.

package solver

import "fmt"

// Evaluate scores guess against solution with the standard two-pass
// algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count the remaining (non-hit) solution letters by letter index.
//
// Pass 2, left to right over non-hit positions:
//   - If there is remaining count for the guessed letter, mark Present
//     and decrement; otherwise mark Miss.
//
// Left-to-right consumption is the tie-break for repeated letters: a
// duplicated guess letter only earns as many Presents as the solution
// has unmatched copies, earliest positions first.
//
// Both words must be WordLen uppercase letters; anything else is an
// ErrInvalidArgument. No other failure modes exist.
func Evaluate(guess, solution string) (Pattern, error) {
	var p Pattern
	if len(guess) != WordLen || len(solution) != WordLen {
		return p, fmt.Errorf("%w: evaluate wants %d-letter words, got %q vs %q",
			ErrInvalidArgument, WordLen, guess, solution)
	}

	// Letter frequency of the solution at non-hit positions (A–Z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == solution[i] {
			p[i] = MarkHit
		} else {
			j := letterIdx(solution[i])
			if j < 0 {
				return Pattern{}, fmt.Errorf("%w: solution %q is not uppercase A-Z", ErrInvalidArgument, solution)
			}
			counts[j]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] == MarkHit {
			continue
		}
		j := letterIdx(guess[i])
		if j < 0 {
			return Pattern{}, fmt.Errorf("%w: guess %q is not uppercase A-Z", ErrInvalidArgument, guess)
		}
		if counts[j] > 0 {
			p[i] = MarkPresent
			counts[j]--
		} else {
			p[i] = MarkMiss
		}
	}
	return p, nil
}

// letterIdx maps an uppercase ASCII letter to 0..25, or -1 if out of range.
func letterIdx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}
