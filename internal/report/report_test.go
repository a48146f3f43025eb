package report

import (
	"bytes"
	"encoding/csv"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/openerbench/internal/sweep"
)

func TestFilename(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 1, 14, 9, 30, 42, 0, time.UTC)
	require.Equal(t, "openers-20260114-093042.csv", Filename(at))
	require.Regexp(t, regexp.MustCompile(`^openers-\d{8}-\d{6}\.csv$`), Filename(time.Now()))
}

func TestWrite(t *testing.T) {
	t.Parallel()
	stats := []sweep.StarterStats{
		{
			Starter: "slate", Games: 10, Solved: 9, Failed: 1,
			Contradictions: 0, TotalTurns: 31,
			ByTurn: [6]int{1, 2, 3, 2, 1, 0},
		},
		{
			Starter: "fuzzy", Games: 10, Solved: 4, Failed: 6,
			Contradictions: 1, TotalTurns: 18,
			ByTurn: [6]int{0, 0, 1, 1, 1, 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, stats))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 starters

	require.Equal(t, "starter", rows[0][0])
	require.Len(t, rows[0], 13)

	require.Equal(t, "slate", rows[1][0])
	require.Equal(t, "10", rows[1][1])
	require.Equal(t, "9", rows[1][2])
	require.Equal(t, "0.9000", rows[1][5])

	require.Equal(t, "fuzzy", rows[2][0])
	require.Equal(t, "1", rows[2][4])     // contradictions
	require.Equal(t, "4.500", rows[2][6]) // mean tries over solved only
	require.Equal(t, "1", rows[2][9])     // turn3 count
}

func TestWriteEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
