// internal/session/session.go
//
// One solving session: the full word bank plus the candidate set still
// consistent with every guess/feedback pair applied so far.
// Responsibilities:
//   - Validate and apply guess/feedback pairs, shrinking the pool.
//   - Track state transitions: solving → solved / no-candidates.
//   - Produce the next recommended guess via the solver engine.
//
// The candidate set only ever shrinks; Apply replaces it with a freshly
// filtered slice rather than mutating in place, so concurrent readers of
// a snapshot are never invalidated.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/pl9ed/wordle-solver/internal/solver"
)

// Session states.
const (
	StateSolving      = "solving"       // more than one candidate remains
	StateSolved       = "solved"        // exactly one candidate remains
	StateNoCandidates = "no_candidates" // pool is empty: feedback was inconsistent or the bank lacks the answer
)

// Session holds the solving state for a single game.
type Session struct {
	ID         string   // unique session identifier (random hex string)
	bank       []string // full guess universe, read-only
	candidates []string // words still consistent with all feedback
}

// New starts a session over bank with the full bank as the initial pool.
func New(bank []string) *Session {
	return &Session{
		ID:         randomID(),
		bank:       bank,
		candidates: append([]string{}, bank...),
	}
}

// Bank returns the full guess universe.
func (s *Session) Bank() []string { return s.bank }

// Candidates returns the current pool. Callers must treat it as read-only.
func (s *Session) Candidates() []string { return s.candidates }

// Remaining returns the current pool size.
func (s *Session) Remaining() int { return len(s.candidates) }

// State reports the coarse session state.
func (s *Session) State() string {
	switch len(s.candidates) {
	case 0:
		return StateNoCandidates
	case 1:
		return StateSolved
	default:
		return StateSolving
	}
}

// Apply records that guess received the observed feedback and narrows
// the pool accordingly. Returns the new pool size and state.
//
// The guess must be WordLen letters; it does not have to be in the bank
// (players sometimes probe with words the bank lacks), but it must be
// well-formed. Applying to an already-empty pool is an error: the caller
// should have surfaced "no candidates" first.
func (s *Session) Apply(guess string, observed solver.Pattern) (int, string, error) {
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != solver.WordLen {
		return len(s.candidates), s.State(), fmt.Errorf("%w: guess %q must be %d letters",
			solver.ErrInvalidArgument, guess, solver.WordLen)
	}
	if len(s.candidates) == 0 {
		return 0, StateNoCandidates, errors.New("session: no candidates remain")
	}

	filtered, err := solver.Filter(guess, observed, s.candidates)
	if err != nil {
		return len(s.candidates), s.State(), err
	}
	s.candidates = filtered
	return len(s.candidates), s.State(), nil
}

// Recommend scans the full bank against the current pool and returns the
// guess minimizing the expected remaining pool size.
func (s *Session) Recommend() (solver.Recommendation, error) {
	return solver.SelectBest(s.bank, s.candidates)
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
