// internal/solver/feedback.go
//
// Guess scoring: the classic two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) target letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Miss.
//
// This ensures correct behavior with repeated letters in both target and
// guess: each target occurrence is consumed at most once, hits first.

package solver

// Score computes the feedback for guess against target. Both must be
// validated WordLen lowercase words; the function is pure and O(WordLen).
func Score(guess, target string) Feedback {
	var fb Feedback

	// Letter frequency for the non-hit positions (a-z).
	var counts [26]int

	// First pass: mark hits and collect counts for remaining target letters.
	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			fb[i] = MarkHit
		} else {
			counts[idx(target[i])]++
		}
	}

	// Second pass: resolve presents/misses for non-hit tiles.
	for i := 0; i < WordLen; i++ {
		if fb[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			fb[i] = MarkPresent
			counts[j]--
		} else {
			fb[i] = MarkMiss
		}
	}
	return fb
}

// idx maps a lowercase ASCII letter byte to 0..25.
// Assumes inputs are validated to a-z elsewhere.
func idx(b byte) int { return int(b - 'a') }
