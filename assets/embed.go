// assets/embed.go
//
// Embedded default word bank so the solver runs with no configuration.
// Lines starting with '#' are comments; blank lines are skipped.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed wordbank.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordBank returns the embedded default word list, raw (unnormalized).
func WordBank() ([]string, error) {
	return readLines("wordbank.txt")
}
