// internal/words/words.go
//
// Word list loading and target sampling for the benchmark.
//
// Responsibilities:
//   - Load the word list from an explicit path, the WORDS_FILE environment
//     variable, or fall back to the embedded default list.
//   - Validate words (exactly 5 letters, a-z) and normalize to lowercase.
//   - Draw seeded, reproducible target samples for simulated games.
//
// Ordering contract:
//   The returned list preserves source order, and the solver slices leading
//   prefixes of it when building evaluation sets. The embedded default list
//   is roughly frequency-ordered (common words first), which is what the
//   tuned thresholds were calibrated against. A custom list works, but its
//   ordering shapes the solver's probe choices.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"math/rand"
	"os"
	"strings"
)

// Len is the required word length.
const Len = 5

//go:embed default_words.txt
var embeddedWords string

// Load returns the ordered word list. Precedence: explicit path argument,
// then the WORDS_FILE environment variable, then the embedded default list.
// Returns an error if the resulting list is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		path = os.Getenv("WORDS_FILE")
	}

	var list []string
	if path != "" {
		var err error
		list, err = readWordFile(path)
		if err != nil {
			return nil, err
		}
	} else {
		list = normalizeLines(embeddedWords)
	}

	if len(list) == 0 {
		return nil, errors.New("words: list is empty")
	}
	return list, nil
}

// readWordFile loads one word per line from a file, lowercases, trims, and
// keeps only valid 5-letter alphabetic words. Duplicates are dropped, first
// occurrence wins, order is otherwise preserved.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if !Valid(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into a slice of
// valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if Valid(w) {
			out = append(out, w)
		}
	}
	return out
}

// Valid reports whether w is exactly Len lowercase ASCII letters.
func Valid(w string) bool {
	if len(w) != Len {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w (case-insensitive) occurs in list.
func Contains(list []string, w string) bool {
	w = strings.ToLower(w)
	for _, x := range list {
		if x == w {
			return true
		}
	}
	return false
}

// Sample draws n distinct words from list using a seeded generator, so the
// same seed always yields the same targets regardless of worker count or
// scheduling. If n is zero, negative, or at least len(list), the whole list
// is returned (copied) in order.
func Sample(list []string, n int, seed int64) []string {
	if n <= 0 || n >= len(list) {
		return append([]string(nil), list...)
	}
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(list))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = list[perm[i]]
	}
	return out
}
