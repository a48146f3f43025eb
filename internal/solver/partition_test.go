package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateEmpty(t *testing.T) {
	t.Parallel()
	require.Equal(t, Evaluation{}, Evaluate("slate", nil))
}

func TestEvaluateSplitsBuckets(t *testing.T) {
	t.Parallel()
	candidates := []string{"crane", "grace", "brace"}

	// crane cannot tell grace from brace apart: both yield the same pattern.
	ev := Evaluate("crane", candidates)
	require.True(t, ev.IsCandidate)
	require.Equal(t, 2, ev.MaxBucket)
	require.InDelta(t, 5.0/3.0, ev.AvgBucket, 1e-9)
	require.InDelta(t, 3.0-5.0/3.0, ev.Eliminated, 1e-9)

	// grace separates all three.
	ev = Evaluate("grace", candidates)
	require.True(t, ev.IsCandidate)
	require.Equal(t, 1, ev.MaxBucket)
	require.InDelta(t, 1.0, ev.AvgBucket, 1e-9)
	require.InDelta(t, 2.0, ev.Eliminated, 1e-9)
}

func TestEvaluateNonCandidate(t *testing.T) {
	t.Parallel()
	ev := Evaluate("green", []string{"crane", "grace", "brace"})
	require.False(t, ev.IsCandidate)
	require.Equal(t, 1, ev.MaxBucket)
}

func TestEvaluateSingleCandidate(t *testing.T) {
	t.Parallel()
	ev := Evaluate("crane", []string{"crane"})
	require.True(t, ev.IsCandidate)
	require.Equal(t, 1, ev.MaxBucket)
	require.InDelta(t, 1.0, ev.AvgBucket, 1e-9)
	require.InDelta(t, 0.0, ev.Eliminated, 1e-9)
}

func TestEvaluateWorstCaseNeverBelowExpected(t *testing.T) {
	t.Parallel()
	candidates := testWords[:20]
	for _, g := range testWords {
		ev := Evaluate(g, candidates)
		require.GreaterOrEqual(t, float64(ev.MaxBucket), ev.AvgBucket, "guess %s", g)
		require.LessOrEqual(t, ev.MaxBucket, len(candidates))
	}
}
