// internal/solver/openings.go
//
// Opening-guess precomputation: rank the whole bank by expected pool
// size with no prior feedback. This is the k-best generalization of
// SelectBest's scan (same scoring, same tie-break), so both run through
// scoreAll rather than duplicating the logic.

package solver

import (
	"fmt"
	"sort"
)

// TopOpenings scores every word in bank against the full bank (the
// no-history candidate pool) and returns the k best openers, ascending
// by expected pool size. Ties keep bank order, which matches SelectBest:
// every opener is by construction a candidate, so the candidate
// preference never discriminates here.
//
// If k exceeds the bank size the whole ranked bank is returned. k < 1 or
// an empty bank is an ErrInvalidArgument. progress may be nil.
func TopOpenings(bank []string, k int, progress Progress) ([]Opening, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidArgument, k)
	}
	scores, err := scoreAll(bank, bank, progress)
	if err != nil {
		return nil, err
	}

	order := make([]int, len(bank))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] < scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	out := make([]Opening, k)
	for i := 0; i < k; i++ {
		out[i] = Opening{Word: bank[order[i]], Score: scores[order[i]]}
	}
	return out, nil
}
