// internal/solver/scan.go
//
// Parallel scoring scan shared by SelectBest and TopOpenings.
// Evaluating every guess against every candidate is the dominant cost of
// the whole program (O(N·M) feedback computations), and each guess's
// score depends only on immutable inputs, so the universe is partitioned
// across a fixed pool of workers. Workers write into disjoint index
// ranges of a preallocated slice; no locks, and the output is identical
// to a sequential scan regardless of scheduling.

package solver

import (
	"fmt"
	"runtime"
	"sync"
)

// Progress is invoked from scoring workers as guesses complete, with the
// number of newly scored guesses. It must be safe for concurrent use.
// A nil Progress is ignored.
type Progress func(n int)

// scoreAll computes ExpectedPoolSize for every guess in universe against
// remaining, in universe order. Fails fast on empty inputs.
func scoreAll(universe, remaining []string, progress Progress) ([]float64, error) {
	if len(universe) == 0 {
		return nil, fmt.Errorf("%w: empty guess universe", ErrInvalidArgument)
	}
	if len(remaining) == 0 {
		return nil, fmt.Errorf("%w: empty candidate pool", ErrInvalidArgument)
	}

	scores := make([]float64, len(universe))

	workers := runtime.NumCPU()
	if workers > len(universe) {
		workers = len(universe)
	}
	chunk := (len(universe) + workers - 1) / workers

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(universe) {
			hi = len(universe)
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				s, err := ExpectedPoolSize(universe[i], remaining)
				if err != nil {
					errs[w] = err
					return
				}
				scores[i] = s
				if progress != nil {
					progress(1)
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return scores, nil
}

// toSet converts a word list into a membership set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
