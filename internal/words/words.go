// internal/words/words.go
//
// Word-bank management for the solver.
//
// Responsibilities:
//   - Load the bank from an environment-provided file or fall back to the
//     embedded default list.
//   - Normalize to uppercase, validate (exactly 5 letters A–Z), and drop
//     duplicates while preserving first-seen order.
//   - Expose the ordered bank, a membership check, and a SHA-256 content
//     fingerprint identifying the bank to the opening cache.
//
// Environment variables:
//   WORDBANK_FILE=/path/to/words.txt   (one word per line)
//
// Constraints:
//   • Bank order is significant: it is the deterministic tie-break order
//     for equal-score guesses, so it must be stable across loads.
//   • Initialization runs once (sync.Once); the bank is read-only after.

package words

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/pl9ed/wordle-solver/assets"
)

// WordLen mirrors the solver's fixed word length.
const WordLen = 5

var (
	initOnce    sync.Once
	bank        []string            // ordered, unique, uppercase
	bankSet     map[string]struct{} // membership lookups
	fingerprint string              // sha256 over the normalized bank
	initialErr  error
)

// Init loads the word bank exactly once.
// Returns an error if no usable words are found.
func Init() error {
	initOnce.Do(func() {
		var raw []string
		var err error

		if path := os.Getenv("WORDBANK_FILE"); path != "" {
			raw, err = readWordFile(path)
		} else {
			raw, err = assets.WordBank()
		}
		if err != nil {
			initialErr = err
			return
		}

		bank = Normalize(raw)
		bankSet = toSet(bank)
		fingerprint = computeFingerprint(bank)

		if len(bank) == 0 {
			initialErr = errors.New("words: word bank is empty")
		}
	})
	return initialErr
}

// All returns the ordered word bank. Callers must treat it as read-only.
func All() []string {
	return bank
}

// Contains reports whether w (any case) is in the bank.
func Contains(w string) bool {
	_, ok := bankSet[strings.ToUpper(w)]
	return ok
}

// Count returns the number of loaded words.
func Count() int { return len(bank) }

// Fingerprint returns a stable hex identifier for the loaded bank's
// content and order. Two sessions with the same bank share opening
// caches; any edit to the list invalidates them.
func Fingerprint() string { return fingerprint }

// readWordFile loads one word per line from a file, raw (unnormalized).
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Normalize uppercases, trims, validates, and de-duplicates a raw word
// list, preserving the order of first occurrence.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, line := range raw {
		w := strings.ToUpper(strings.TrimSpace(line))
		if len(w) != WordLen || !isUpperAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// computeFingerprint hashes the normalized bank, one word per line.
func computeFingerprint(list []string) string {
	h := sha256.New()
	for _, w := range list {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// toSet converts a list of words into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isUpperAlpha reports whether s is all uppercase ASCII letters.
func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
