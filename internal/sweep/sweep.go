// internal/sweep/sweep.go
//
// The outer benchmark loop: every starter plays a full game against every
// sampled target, and per-starter outcomes are aggregated into stats.
//
// Concurrency model: distinct (starter, target) games share no mutable
// state, so the sweep is embarrassingly parallel. Each starter is owned
// end-to-end by one worker and its stats are written to a pre-allocated
// slice slot, so there are no shared counters and no locks. The word list
// and target sample are read-only throughout.

package sweep

import (
	"runtime"
	"sort"
	"sync"

	"github.com/robalobadob/openerbench/internal/solver"
	"github.com/robalobadob/openerbench/internal/words"
)

// Options controls one sweep run.
type Options struct {
	// Games is the number of secret targets sampled per starter.
	// Zero (or >= list size) plays every word as a target.
	Games int
	// Workers is the worker-pool size; zero means GOMAXPROCS.
	Workers int
	// Seed drives the target sample. The same seed yields the same targets
	// for every starter and every run, independent of worker scheduling.
	Seed int64
}

// StarterStats aggregates the games played with one opening word.
type StarterStats struct {
	Starter        string
	Games          int
	Solved         int
	Failed         int                  // exhausted + contradictions
	Contradictions int                  // subset of Failed
	ByTurn         [solver.MaxTurns]int // solved-game counts per winning turn
	TotalTurns     int                  // sum of winning turns over solved games
}

// SolveRate is the fraction of games solved, 0 when no games were played.
func (s StarterStats) SolveRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Games)
}

// MeanTries is the mean winning turn over solved games only, 0 when none.
func (s StarterStats) MeanTries() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Solved)
}

// record folds one finished game into the stats.
func (s *StarterStats) record(r solver.GameResult) {
	s.Games++
	if r.Outcome.Solved() {
		s.Solved++
		s.ByTurn[r.Turns-1]++
		s.TotalTurns += r.Turns
		return
	}
	s.Failed++
	if r.Outcome == solver.OutcomeContradiction {
		s.Contradictions++
	}
}

// Run benchmarks every starter against the same seeded target sample drawn
// from list. progress, if non-nil, is called once per finished game and may
// be invoked concurrently from multiple workers.
//
// The returned slice is ordered like starters; use Rank to sort by quality.
func Run(starters, list []string, cfg solver.Config, opt Options, progress func(n int)) []StarterStats {
	targets := words.Sample(list, opt.Games, opt.Seed)

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(starters) {
		workers = len(starters)
	}

	stats := make([]StarterStats, len(starters))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				stats[i] = playAll(starters[i], targets, list, cfg, progress)
			}
		}()
	}
	for i := range starters {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return stats
}

// playAll plays one starter against every target and accumulates its stats
// locally before returning them.
func playAll(starter string, targets, list []string, cfg solver.Config, progress func(n int)) StarterStats {
	s := StarterStats{Starter: starter}
	for _, target := range targets {
		s.record(solver.Play(target, starter, list, cfg))
		if progress != nil {
			progress(1)
		}
	}
	return s
}

// Rank sorts stats best-first: solve rate descending, then mean tries
// ascending, then starter ascending. Sorting is stable on the full key, so
// equal starters cannot reorder between runs.
func Rank(stats []StarterStats) {
	sort.Slice(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.SolveRate() != b.SolveRate() {
			return a.SolveRate() > b.SolveRate()
		}
		if a.MeanTries() != b.MeanTries() {
			return a.MeanTries() < b.MeanTries()
		}
		return a.Starter < b.Starter
	})
}
