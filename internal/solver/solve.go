// internal/solver/solve.go
//
// The per-game turn loop: select, score, learn, filter, repeat.

package solver

// Play simulates one full game against target, opening with starter (played
// unconditionally on turn 1; pass "" to let the selector choose). words is
// the full ordered list; the game's candidate set starts as a copy of it, so
// the caller's slice is never mutated and games may run concurrently over a
// shared list.
//
// The loop runs at most MaxTurns turns of select → feedback → learn → filter.
// An all-hit feedback ends the game solved; an emptied candidate set ends it
// immediately as a contradiction (it should not happen against a genuine
// target, but a batch must not die on it); running out of turns ends it
// exhausted.
func Play(target, starter string, words []string, cfg Config) GameResult {
	res := GameResult{
		Starter: starter,
		Target:  target,
		Guesses: make([]string, 0, MaxTurns),
	}

	candidates := append([]string(nil), words...)
	var know Knowledge

	for turn := 1; turn <= MaxTurns; turn++ {
		if len(candidates) == 0 {
			res.Outcome = OutcomeContradiction
			res.Turns = len(res.Guesses)
			return res
		}

		guess := SelectGuess(candidates, words, turn, know, starter, cfg)
		fb := Score(guess, target)
		res.Guesses = append(res.Guesses, guess)
		know = know.Update(guess, fb)

		if fb.AllHit() {
			res.Outcome = OutcomeSolved
			res.Turns = turn
			return res
		}

		candidates = Filter(candidates, guess, fb)
	}

	res.Outcome = OutcomeExhausted
	res.Turns = len(res.Guesses)
	return res
}
