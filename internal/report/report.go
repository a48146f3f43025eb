// internal/report/report.go
//
// Tabular output for sweep results: CSV rows and generated filenames.
// The solver core knows nothing about any of this.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/robalobadob/openerbench/internal/sweep"
)

// Filename returns the default output name for a run finished at t,
// e.g. "openers-20260114-093042.csv".
func Filename(t time.Time) string {
	return fmt.Sprintf("openers-%s.csv", t.Format("20060102-150405"))
}

// header is the CSV column layout, one row per starter.
var header = []string{
	"starter", "games", "solved", "failed", "contradictions",
	"solve_rate", "mean_tries",
	"turn1", "turn2", "turn3", "turn4", "turn5", "turn6",
}

// Write renders stats as CSV to w, in the given order (callers rank first).
func Write(w io.Writer, stats []sweep.StarterStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range stats {
		row := []string{
			s.Starter,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Solved),
			strconv.Itoa(s.Failed),
			strconv.Itoa(s.Contradictions),
			strconv.FormatFloat(s.SolveRate(), 'f', 4, 64),
			strconv.FormatFloat(s.MeanTries(), 'f', 3, 64),
		}
		for _, n := range s.ByTurn {
			row = append(row, strconv.Itoa(n))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes stats to path, creating or truncating it.
func WriteFile(path string, stats []sweep.StarterStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, stats); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
