// internal/solver/partition.go
//
// Partition evaluation: how would a guess split the remaining candidates?
//
// Each candidate, as a hypothetical target, yields some feedback pattern for
// the guess. Grouping candidates by that pattern gives the partition; its
// bucket sizes tell us how bad (max) and how typical (avg) the remaining set
// would be after playing the guess.

package solver

// Evaluation summarizes one guess's partition of a candidate set.
type Evaluation struct {
	// MaxBucket is the largest bucket size: the worst-case number of
	// candidates left after this guess.
	MaxBucket int
	// AvgBucket is the mean bucket size over candidates, i.e. the expected
	// remaining-set size when each candidate is an equally likely target.
	AvgBucket float64
	// IsCandidate reports whether the guess itself is still a candidate.
	IsCandidate bool
	// Eliminated is len(candidates) - AvgBucket: the expected number of
	// candidates removed by this guess.
	Eliminated float64
}

// Evaluate partitions candidates by Score(guess, ·) and derives the metrics
// above. An empty candidate set yields all-zero metrics. The partition map is
// ephemeral and never escapes this call.
func Evaluate(guess string, candidates []string) Evaluation {
	if len(candidates) == 0 {
		return Evaluation{}
	}

	buckets := make(map[Feedback]int)
	isCandidate := false
	for _, w := range candidates {
		buckets[Score(guess, w)]++
		if w == guess {
			isCandidate = true
		}
	}

	// AvgBucket weights each bucket by its probability of being the one we
	// land in: a bucket of size k is hit by k of the equally likely targets.
	max := 0
	sumSq := 0
	for _, k := range buckets {
		if k > max {
			max = k
		}
		sumSq += k * k
	}
	avg := float64(sumSq) / float64(len(candidates))

	return Evaluation{
		MaxBucket:   max,
		AvgBucket:   avg,
		IsCandidate: isCandidate,
		Eliminated:  float64(len(candidates)) - avg,
	}
}
