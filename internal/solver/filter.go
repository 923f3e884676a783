// internal/solver/filter.go
//
// Candidate filtering: narrow the remaining pool to the words consistent
// with feedback actually observed. Consistency means producing the exact
// observed pattern under Evaluate, so filtering can never disagree with
// scoring.

package solver

// Filter returns the subset of remaining that is still consistent with
// guess having received the observed pattern: every s for which
// Evaluate(guess, s) == observed.
//
// The input slice is never mutated; the result is a fresh slice (possibly
// empty) preserving the input order. Candidates whose evaluation fails
// the length precondition propagate the error.
func Filter(guess string, observed Pattern, remaining []string) ([]string, error) {
	out := make([]string, 0, len(remaining))
	for _, s := range remaining {
		p, err := Evaluate(guess, s)
		if err != nil {
			return nil, err
		}
		if p == observed {
			out = append(out, s)
		}
	}
	return out, nil
}
