// internal/solver/score.go
//
// Pool scoring: the expected number of candidates that would remain
// after playing a guess, under a uniform prior over the current pool.

package solver

import "fmt"

// ExpectedPoolSize computes the mean size of the candidate pool left
// after guessing guess, assuming each remaining candidate is equally
// likely to be the true solution.
//
// Candidates are grouped by the pattern the guess would receive against
// them; a group of size c occurs with probability c/total and leaves c
// candidates, so the expectation is Σ c²/total. The result is always in
// [1, len(remaining)] for a non-empty pool.
//
// An empty pool is an ErrInvalidState: the caller should have detected
// "no candidates remain" before asking for a score.
func ExpectedPoolSize(guess string, remaining []string) (float64, error) {
	if len(remaining) == 0 {
		return 0, fmt.Errorf("%w: scoring against an empty candidate pool", ErrInvalidState)
	}

	groups := make(map[Pattern]int)
	for _, s := range remaining {
		p, err := Evaluate(guess, s)
		if err != nil {
			return 0, err
		}
		groups[p]++
	}

	total := float64(len(remaining))
	var sum float64
	for _, c := range groups {
		sum += float64(c) * float64(c)
	}
	return sum / total, nil
}
