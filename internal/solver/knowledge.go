// internal/solver/knowledge.go
//
// Accumulated letter knowledge across the turns of a game.

package solver

// Update folds one guess/feedback pair into the knowledge and returns the new
// value. The receiver is unchanged (value semantics), so turn-by-turn states
// stay independently inspectable.
//
// Per position:
//   - Hit: fix the letter at that position and mark it known-present.
//   - Present: mark the letter known-present and record that it does not
//     occupy this position.
//   - Miss: exclude the letter, unless it is already known-present. With
//     repeated letters a single guess can yield Miss at one occurrence and
//     Hit/Present at another; a known-present letter is never excluded.
//
// A letter previously excluded is un-excluded the moment any evidence shows
// it present, keeping known and excluded disjoint at all times.
func (k Knowledge) Update(guess string, fb Feedback) Knowledge {
	// First absorb the positive evidence, so that a Miss on a duplicate
	// occurrence later in the same word cannot exclude a present letter.
	for i := 0; i < WordLen; i++ {
		j := idx(guess[i])
		switch fb[i] {
		case MarkHit:
			k.Positions[i] = guess[i]
			k.Known[j] = true
			k.Excluded[j] = false
		case MarkPresent:
			k.Known[j] = true
			k.Excluded[j] = false
			k.Wrong[j][i] = true
		}
	}
	for i := 0; i < WordLen; i++ {
		if fb[i] != MarkMiss {
			continue
		}
		if j := idx(guess[i]); !k.Known[j] {
			k.Excluded[j] = true
		}
	}
	return k
}

// UnknownLetters counts the distinct letters of word that are neither
// known-present nor excluded: the letters a guess of word would newly test.
func (k Knowledge) UnknownLetters(word string) int {
	var seen [26]bool
	n := 0
	for i := 0; i < WordLen; i++ {
		j := idx(word[i])
		if seen[j] {
			continue
		}
		seen[j] = true
		if !k.Known[j] && !k.Excluded[j] {
			n++
		}
	}
	return n
}

// KnownLetters counts the distinct letters of word already known present.
func (k Knowledge) KnownLetters(word string) int {
	var seen [26]bool
	n := 0
	for i := 0; i < WordLen; i++ {
		j := idx(word[i])
		if seen[j] {
			continue
		}
		seen[j] = true
		if k.Known[j] {
			n++
		}
	}
	return n
}
