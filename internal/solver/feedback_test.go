package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testWords is a small ordered list shared across the package tests. Order
// matters: the selector slices leading prefixes of it.
var testWords = []string{
	"slate", "crane", "irate", "stare", "trace", "grace", "brace",
	"arose", "adieu", "audio", "house", "mouse", "round", "sound",
	"pound", "light", "night", "might", "study", "truck", "black",
	"white", "green", "party", "tiger", "queen", "zebra", "quick",
	"jumbo", "vivid", "fuzzy", "thick", "stale", "shale",
}

func fb(s string) Feedback {
	var f Feedback
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'G':
			f[i] = MarkHit
		case 'Y':
			f[i] = MarkPresent
		default:
			f[i] = MarkMiss
		}
	}
	return f
}

func TestScore(t *testing.T) {
	t.Parallel()
	cases := []struct {
		guess, target, want string
	}{
		{"crane", "crane", "GGGGG"},
		{"slate", "crane", "BBGBG"},
		{"speed", "erase", "YBYYB"}, // single s, the two e's consume both target e's
		{"erase", "speed", "YBBYY"},
		{"aaaaa", "abcde", "GBBBB"}, // repeated guess letter, one target occurrence
		{"abcde", "aaaaa", "GBBBB"},
		{"geese", "theme", "BBGBG"}, // miss and hit for the same letter in one guess
		{"slate", "house", "YBBBG"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.guess+"_vs_"+c.target, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, c.want, Score(c.guess, c.target).String())
		})
	}
}

func TestScoreAllHitIffEqual(t *testing.T) {
	t.Parallel()
	for _, g := range testWords {
		for _, w := range testWords {
			got := Score(g, w)
			require.Equal(t, g == w, got.AllHit(), "%s vs %s", g, w)
		}
	}
}

func TestScoreProperties(t *testing.T) {
	t.Parallel()
	for _, g := range testWords {
		for _, w := range testWords {
			got := Score(g, w)

			// Hits are exactly the matching positions.
			hits := 0
			for i := 0; i < WordLen; i++ {
				if g[i] == w[i] {
					hits++
				}
			}
			gotHits := 0
			for _, m := range got {
				if m == MarkHit {
					gotHits++
				}
			}
			require.Equal(t, hits, gotHits, "%s vs %s", g, w)

			// No letter is credited (hit or present) more often than it
			// occurs in the target.
			for c := byte('a'); c <= 'z'; c++ {
				credited := 0
				for i := 0; i < WordLen; i++ {
					if g[i] == c && got[i] != MarkMiss {
						credited++
					}
				}
				occurs := strings.Count(w, string(c))
				require.LessOrEqual(t, credited, occurs, "%s vs %s letter %c", g, w, c)
			}
		}
	}
}
