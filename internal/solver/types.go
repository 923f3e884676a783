// internal/solver/types.go
//
// Core type definitions for the solver engine.
// Defines:
//   - Mark: per-letter feedback for a guess (miss/present/hit).
//   - Pattern: the full per-position feedback for one guess.
//   - Recommendation: output of the best-guess scan.
//   - Opening: one ranked opening guess.
//
// Patterns use the text form G/Y/X (green/yellow/gray) at the edges,
// matching what players type into the interactive loop.

package solver

import (
	"errors"
	"fmt"
)

// WordLen is the fixed word length the solver operates on.
const WordLen = 5

// Mark represents the evaluation result for a single letter in a guess.
// Values are ordered miss < present < hit so a Pattern doubles as a
// base-3 number when compactness matters.
type Mark uint8

const (
	MarkMiss    Mark = iota // letter does not occur in the remaining pool
	MarkPresent             // letter occurs, but at a different position
	MarkHit                 // letter is correct and in the correct position
)

// markChars maps Mark values to their single-character text form.
var markChars = [3]byte{'X', 'Y', 'G'}

// Char returns the text form of a mark: 'G' (hit), 'Y' (present), 'X' (miss).
func (m Mark) Char() byte {
	if m > MarkHit {
		return '?'
	}
	return markChars[m]
}

// Pattern is the feedback a guess receives against one hypothetical
// solution: one Mark per position. It is a value array so it is
// comparable and usable directly as a map key when grouping candidates.
type Pattern [WordLen]Mark

// String renders the pattern in G/Y/X form, e.g. "GGYXX".
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, m := range p {
		b[i] = m.Char()
	}
	return string(b[:])
}

// AllHit reports whether every position is a hit (the guess is the solution).
func (p Pattern) AllHit() bool {
	for _, m := range p {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// ParsePattern converts a G/Y/X string (case-insensitive) into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLen {
		return p, fmt.Errorf("%w: feedback %q must be %d characters", ErrInvalidArgument, s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'G', 'g':
			p[i] = MarkHit
		case 'Y', 'y':
			p[i] = MarkPresent
		case 'X', 'x':
			p[i] = MarkMiss
		default:
			return p, fmt.Errorf("%w: feedback character %q (want G, Y, or X)", ErrInvalidArgument, s[i])
		}
	}
	return p, nil
}

// Recommendation is the result of a best-guess scan.
type Recommendation struct {
	Word             string  `json:"word"`             // recommended guess
	ExpectedPoolSize float64 `json:"expectedPoolSize"` // mean candidates left after the feedback
	IsCandidate      bool    `json:"isCandidate"`      // true if the word could itself be the solution
}

// Opening is one entry of the ranked opening-guess list.
type Opening struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"` // expected pool size against the full bank
}

// Failure taxonomy. Both classes fail fast and propagate to the caller;
// the engine performs no retries and no recovery.
var (
	// ErrInvalidArgument covers malformed inputs: wrong word length,
	// empty guess universe, or an empty candidate set.
	ErrInvalidArgument = errors.New("solver: invalid argument")

	// ErrInvalidState covers impossible internal conditions, e.g. scoring
	// against zero candidates. It signals an upstream filtering bug.
	ErrInvalidState = errors.New("solver: invalid state")
)
