// db.go
//
// Database helpers for the opener benchmark.
// Responsibilities:
//   - Opening the SQLite results store with safe defaults (WAL, busy timeout,
//     foreign keys).
//   - Applying migrations from ./sql/*.sql (idempotent, recorded in _migrations).
//   - Persisting per-starter sweep rows and querying the best starters
//     recorded across runs.
//
// Note: This file assumes SQLite but can be adapted for other backends.

package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/openerbench/internal/sweep"
)

/**
 * openDB opens (and creates if missing) a SQLite database file.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/bench.db).
 * - Configures busy timeout and WAL journaling mode.
 * - Enforces foreign keys.
 *
 * @param dsn Database path or DSN string.
 * @returns *sql.DB ready for queries/migrations.
 */
func openDB(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/bench.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	// Open DB with busy timeout and WAL journaling.
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// Explicitly enforce foreign keys + WAL.
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies SQL migrations from ./sql directory.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each *.sql file in lexical order.
 * - Skips if already applied.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	// Collect ./sql/*.sql
	root := "sql"
	var files []string
	if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk sql dir: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		// Skip if already applied
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		// Read file contents
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		// Run inside dedicated transaction
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

/* ------------------------- results store helpers ------------------------ */

/** Row type returned for best-starter queries. */
type StarterRow struct {
	Starter   string
	Games     int
	Solved    int
	SolveRate float64
	MeanTries float64
}

/**
 * insertRun persists every starter's stats for one sweep as a batch.
 *
 * - All rows share a run timestamp and the sweep parameters (seed, games),
 *   so later runs with different samples stay distinguishable.
 * - Runs inside a single transaction: a half-written run is never visible.
 */
func insertRun(ctx context.Context, db *sql.DB, seed int64, stats []sweep.StarterStats) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO starter_results
            (run_at, seed, starter, games, solved, failed, contradictions,
             total_turns, solve_rate, mean_tries)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	runAt := time.Now().UTC().Format(time.RFC3339)
	for _, s := range stats {
		if _, err := stmt.ExecContext(ctx,
			runAt, seed, s.Starter, s.Games, s.Solved, s.Failed,
			s.Contradictions, s.TotalTurns, s.SolveRate(), s.MeanTries(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s: %w", s.Starter, err)
		}
	}
	return tx.Commit()
}

/**
 * bestStarters fetches the top starters aggregated across all recorded runs.
 *
 * - Ordered by overall solve rate DESC, then mean tries ASC, then starter.
 * - Default limit is 10 if not specified.
 */
func bestStarters(ctx context.Context, db *sql.DB, limit int) ([]StarterRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.QueryContext(ctx, `
        SELECT starter,
               SUM(games), SUM(solved),
               CAST(SUM(solved) AS REAL) / SUM(games),
               CASE WHEN SUM(solved) > 0
                    THEN CAST(SUM(total_turns) AS REAL) / SUM(solved)
                    ELSE 0 END
        FROM starter_results
        GROUP BY starter
        HAVING SUM(games) > 0
        ORDER BY 4 DESC, 5 ASC, starter ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StarterRow, 0, limit)
	for rows.Next() {
		var r StarterRow
		if err := rows.Scan(&r.Starter, &r.Games, &r.Solved, &r.SolveRate, &r.MeanTries); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
