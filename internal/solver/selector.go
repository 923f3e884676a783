// internal/solver/selector.go
//
// Best-guess selection: scan the whole guess universe and pick the guess
// whose expected remaining pool is smallest.

package solver

// SelectBest scores every guess in universe against the remaining pool
// and returns the minimizer.
//
// Ties are broken deterministically:
//  1. a guess that is itself a remaining candidate beats one that is not
//     (an equally informative guess should double as a possible answer);
//  2. otherwise the guess appearing earliest in universe wins.
//
// Empty universe or pool is an ErrInvalidArgument.
func SelectBest(universe, remaining []string) (Recommendation, error) {
	scores, err := scoreAll(universe, remaining, nil)
	if err != nil {
		return Recommendation{}, err
	}

	pool := toSet(remaining)

	best := 0
	_, bestIsCand := pool[universe[0]]
	for i := 1; i < len(universe); i++ {
		_, isCand := pool[universe[i]]
		if scores[i] < scores[best] || (scores[i] == scores[best] && isCand && !bestIsCand) {
			best, bestIsCand = i, isCand
		}
	}

	return Recommendation{
		Word:             universe[best],
		ExpectedPoolSize: scores[best],
		IsCandidate:      bestIsCand,
	}, nil
}
