package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterConsistentSet(t *testing.T) {
	t.Parallel()
	got := Filter(testWords, "slate", Score("slate", "crane"))
	require.Equal(t, []string{"crane", "grace", "brace"}, got)
}

func TestFilterNeverGrows(t *testing.T) {
	t.Parallel()
	for _, g := range testWords {
		for _, target := range testWords {
			got := Filter(testWords, g, Score(g, target))
			require.LessOrEqual(t, len(got), len(testWords))
			// The true target always survives its own feedback.
			require.Contains(t, got, target, "guess %s target %s", g, target)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	t.Parallel()
	got := Filter(testWords, "slate", Score("slate", "house"))
	require.Equal(t, []string{"house", "mouse"}, got)
}

func TestFilterCanEmpty(t *testing.T) {
	t.Parallel()
	// Feedback claiming slate is all correct is consistent with slate only.
	got := Filter([]string{"crane", "house"}, "slate", fb("GGGGG"))
	require.Empty(t, got)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := []string{"crane", "grace", "brace", "slate"}
	_ = Filter(in, "slate", Score("slate", "crane"))
	require.Equal(t, []string{"crane", "grace", "brace", "slate"}, in)
}
