// internal/solver/selector.go
//
// Guess selection: the heuristic core of the solver.
//
// The selector switches strategy by remaining-candidate count:
//
//	elimination (> cfg.EliminationFloor):  probe with non-candidates that test
//	                                       many untried letters
//	exploration (> cfg.AnswerCeiling):     smaller space, still probing, ranked
//	                                       by untried-letter count
//	answer      (<= cfg.AnswerCeiling):    evaluate the candidates themselves
//
// Every regime scores its evaluation set with the partition metrics: the
// primary objective is minimizing the worst-case remaining-candidate count,
// with small biases toward letter discovery in large spaces and toward
// committing to a likely answer once the space is small or turns run out.
//
// The evaluation sets are built from leading prefixes of the full word list,
// so list order matters: the default list is roughly frequency-ordered and
// callers must keep whatever ordering their list came with.

package solver

import "sort"

// Bonus thresholds that are not regime boundaries: with two or fewer
// candidates, or from this turn on, a candidate guess is preferred outright.
const (
	smallSetMax  = 2
	lateGameTurn = 5
)

// SelectGuess picks the next guess.
//
// candidates is the current consistent set, all is the full ordered word
// list, turn counts from 1, and fixedStarter, when non-empty, is played
// unconditionally on turn 1 (that is how a specific opener gets benchmarked).
// candidates must be non-empty.
func SelectGuess(candidates, all []string, turn int, know Knowledge, fixedStarter string, cfg Config) string {
	// Forced: a single consistent word is the answer.
	if len(candidates) == 1 {
		return candidates[0]
	}

	if turn == 1 && fixedStarter != "" {
		return fixedStarter
	}

	inCandidates := make(map[string]struct{}, len(candidates))
	for _, w := range candidates {
		inCandidates[w] = struct{}{}
	}

	// Two left: any probe whose feedback differs between them decides the
	// game on the following turn.
	if len(candidates) == 2 {
		if w := findProbe(candidates, all, inCandidates, cfg.ProbeScan); w != "" {
			return w
		}
		return candidates[0]
	}

	var evalSet []string
	switch {
	case len(candidates) > cfg.EliminationFloor:
		evalSet = eliminationSet(candidates, all, inCandidates, know, cfg)
	case len(candidates) > cfg.AnswerCeiling:
		evalSet = explorationSet(all, inCandidates, know, cfg)
	default:
		evalSet = answerSet(candidates, all, cfg)
	}

	return bestScored(evalSet, candidates, inCandidates, turn, know, cfg)
}

// findProbe scans the first scan non-candidate words for one that produces
// different feedback against the two remaining candidates. Returns "" if the
// prefix holds no such word.
func findProbe(candidates, all []string, inCandidates map[string]struct{}, scan int) string {
	seen := 0
	for _, w := range all {
		if seen >= scan {
			break
		}
		if _, ok := inCandidates[w]; ok {
			continue
		}
		seen++
		if Score(w, candidates[0]) != Score(w, candidates[1]) {
			return w
		}
	}
	return ""
}

// eliminationSet builds the evaluation set for large candidate spaces: from
// the first cfg.EliminationScan non-candidate words, those testing at least
// three untried letters. If too few qualify, it falls back to any of those
// words whose letters occur in the candidates at all (aggregate frequency
// score, each letter counted once per word). Discovery order is preserved and
// the set is capped at cfg.EliminationCap.
func eliminationSet(candidates, all []string, inCandidates map[string]struct{}, know Knowledge, cfg Config) []string {
	scanned := make([]string, 0, cfg.EliminationScan)
	qualified := make([]string, 0, cfg.EliminationCap)
	for _, w := range all {
		if len(scanned) >= cfg.EliminationScan {
			break
		}
		if _, ok := inCandidates[w]; ok {
			continue
		}
		scanned = append(scanned, w)
		if know.UnknownLetters(w) >= 3 {
			qualified = append(qualified, w)
		}
	}

	if len(qualified) < cfg.MinEvalSet {
		freq := letterFrequencies(candidates)
		qualified = qualified[:0]
		for _, w := range scanned {
			if frequencyScore(w, freq) > 0 {
				qualified = append(qualified, w)
			}
		}
	}

	if len(qualified) > cfg.EliminationCap {
		qualified = qualified[:cfg.EliminationCap]
	}
	return qualified
}

// explorationSet builds the evaluation set for mid-sized spaces: from the
// first cfg.ExplorationScan non-candidate words, those testing at least two
// untried letters, ranked by that count descending (stable on ties), top
// cfg.ExplorationCap.
func explorationSet(all []string, inCandidates map[string]struct{}, know Knowledge, cfg Config) []string {
	type ranked struct {
		word    string
		unknown int
	}
	seen := 0
	var picks []ranked
	for _, w := range all {
		if seen >= cfg.ExplorationScan {
			break
		}
		if _, ok := inCandidates[w]; ok {
			continue
		}
		seen++
		if n := know.UnknownLetters(w); n >= 2 {
			picks = append(picks, ranked{w, n})
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].unknown > picks[j].unknown
	})
	if len(picks) > cfg.ExplorationCap {
		picks = picks[:cfg.ExplorationCap]
	}
	out := make([]string, len(picks))
	for i, p := range picks {
		out[i] = p.word
	}
	return out
}

// answerSet builds the evaluation set for small spaces: the candidates
// themselves, extended with leading words of the full list when the set is
// too small to also measure good elimination probes.
func answerSet(candidates, all []string, cfg Config) []string {
	out := append([]string(nil), candidates...)
	if len(out) >= cfg.MinEvalSet {
		return out
	}
	included := make(map[string]struct{}, len(out))
	for _, w := range out {
		included[w] = struct{}{}
	}
	limit := cfg.AnswerExtendScan
	if limit > len(all) {
		limit = len(all)
	}
	for _, w := range all[:limit] {
		if _, ok := included[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

// bestScored evaluates every word of the set against the candidates and
// returns the minimum-score word. Ties break lexicographically by
// (MaxBucket, AvgBucket, word) so selection is deterministic regardless of
// evaluation-set order.
func bestScored(evalSet, candidates []string, inCandidates map[string]struct{}, turn int, know Knowledge, cfg Config) string {
	type scored struct {
		score     float64
		maxBucket int
		avgBucket float64
	}
	var best string
	var bestS scored

	manyCandidates := len(candidates) > cfg.AnswerCeiling

	for _, w := range evalSet {
		ev := Evaluate(w, candidates)
		_, isCandidate := inCandidates[w]

		// Worst case first, expected case as a fine-grained tiebreak.
		score := float64(ev.MaxBucket) + ev.AvgBucket/1000

		// Probes in large spaces are rewarded for touching untried letters
		// and nudged away from re-testing what we already know.
		if !isCandidate && manyCandidates {
			score += -0.5*float64(know.UnknownLetters(w)) + 0.3*float64(know.KnownLetters(w))
		}

		// Answer-vs-probe preference: commit to a candidate when the space
		// is tiny or the budget is nearly spent, otherwise keep probing.
		if isCandidate {
			if len(candidates) <= smallSetMax || turn >= lateGameTurn {
				score += -1.0
			} else {
				score += 2.0
			}
		} else if manyCandidates {
			score += -0.5
		}

		s := scored{score, ev.MaxBucket, ev.AvgBucket}
		if best == "" || less(s.score, s.maxBucket, s.avgBucket, w, bestS.score, bestS.maxBucket, bestS.avgBucket, best) {
			best, bestS = w, s
		}
	}
	if best == "" {
		// Empty evaluation set; fall back to the first candidate.
		return candidates[0]
	}
	return best
}

func less(score float64, maxB int, avgB float64, word string, bScore float64, bMaxB int, bAvgB float64, bWord string) bool {
	if score != bScore {
		return score < bScore
	}
	if maxB != bMaxB {
		return maxB < bMaxB
	}
	if avgB != bAvgB {
		return avgB < bAvgB
	}
	return word < bWord
}

// letterFrequencies counts, per letter, the number of candidates containing
// it (each letter counted once per word).
func letterFrequencies(candidates []string) [26]int {
	var freq [26]int
	for _, w := range candidates {
		var seen [26]bool
		for i := 0; i < WordLen; i++ {
			j := idx(w[i])
			if !seen[j] {
				seen[j] = true
				freq[j]++
			}
		}
	}
	return freq
}

// frequencyScore sums the candidate-frequency weight of word's distinct
// letters.
func frequencyScore(word string, freq [26]int) int {
	var seen [26]bool
	n := 0
	for i := 0; i < WordLen; i++ {
		j := idx(word[i])
		if !seen[j] {
			seen[j] = true
			n += freq[j]
		}
	}
	return n
}
