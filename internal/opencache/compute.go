// internal/opencache/compute.go
//
// Load-or-compute-then-store orchestration for opening guesses.
// The solver core only knows how to rank openers; whether a ranking is
// fetched from disk or recomputed is decided here.

package opencache

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/pl9ed/wordle-solver/internal/solver"
)

// LoadOrCompute returns the opening list for the bank identified by
// fingerprint, consulting the store first. On a miss it runs the full
// precomputation (the expensive scan) and stores the result.
//
// The returned bool reports whether the cache was used. store may be nil,
// in which case the list is always recomputed and never persisted. Cache
// read/write failures degrade to recomputation and are logged, not
// returned: a broken cache must not take the solver down.
func LoadOrCompute(ctx context.Context, store *Store, bank []string, fingerprint string, k int, progress solver.Progress) ([]solver.Opening, bool, error) {
	if store != nil {
		cached, err := store.Load(ctx, fingerprint)
		if err != nil {
			log.Warn().Err(err).Msg("opening cache read failed, recomputing")
		} else if len(cached) > 0 {
			return cached, true, nil
		}
	}

	list, err := solver.TopOpenings(bank, k, progress)
	if err != nil {
		return nil, false, err
	}

	if store != nil {
		if err := store.Save(ctx, fingerprint, list); err != nil {
			log.Warn().Err(err).Msg("opening cache write failed")
		}
	}
	return list, false, nil
}
