// internal/solver/filter.go
//
// Candidate filtering: keep only the words that would have produced the
// feedback we actually saw.

package solver

// Filter returns the order-preserving subsequence of candidates w for which
// Score(guess, w) equals fb. The result is a fresh slice; the input is not
// modified. The result never grows: filtering is a monotonic shrink.
func Filter(candidates []string, guess string, fb Feedback) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if Score(guess, w) == fb {
			out = append(out, w)
		}
	}
	return out
}
