package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/openerbench/internal/report"
	"github.com/robalobadob/openerbench/internal/solver"
	"github.com/robalobadob/openerbench/internal/sweep"
	"github.com/robalobadob/openerbench/internal/words"
)

type options struct {
	Words   string `long:"words" description:"path to word list file (one 5-letter word per line; overrides WORDS_FILE)"`
	Starter string `long:"starter" description:"benchmark a single opening word instead of sweeping the whole list"`
	Games   int    `long:"games" default:"200" description:"secret targets sampled per starter (0 = every word)"`
	Workers int    `long:"workers" default:"0" description:"worker pool size (0 = number of CPUs)"`
	Seed    int64  `long:"seed" default:"1" description:"seed for the reproducible target sample"`
	Out     string `long:"out" description:"CSV output path (default: generated openers-<timestamp>.csv)"`
	DB      string `long:"db" description:"SQLite path to also persist results (optional)"`
	Top     int    `long:"top" default:"10" description:"how many best starters to log (also the row limit for --report)"`
	Report  bool   `long:"report" description:"skip the sweep and report best starters from --db"`
}

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		// go-flags already printed the message (or the help screen).
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	if opts.Report {
		if opts.DB == "" {
			log.Fatal().Msg("--report requires --db")
		}
		reportFromStore(opts)
		return
	}

	list, err := words.Load(opts.Words)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Info().Int("words", len(list)).Msg("word list loaded")

	starters := list
	if opts.Starter != "" {
		s := strings.ToLower(strings.TrimSpace(opts.Starter))
		if !words.Contains(list, s) {
			log.Fatal().Str("starter", opts.Starter).Msg("starter is not in the word list")
		}
		starters = []string{s}
	}

	opt := sweep.Options{Games: opts.Games, Workers: opts.Workers, Seed: opts.Seed}
	games := opts.Games
	if games <= 0 || games > len(list) {
		games = len(list)
	}

	log.Info().
		Int("starters", len(starters)).
		Int("games_per_starter", games).
		Int64("seed", opts.Seed).
		Msg("starting sweep")

	bar := progressbar.Default(int64(len(starters) * games))
	start := time.Now()
	stats := sweep.Run(starters, list, solver.DefaultConfig(), opt, func(n int) {
		_ = bar.Add(n)
	})
	_ = bar.Finish()

	sweep.Rank(stats)
	logTop(stats, opts.Top)
	log.Info().Dur("elapsed", time.Since(start)).Msg("sweep finished")

	out := opts.Out
	if out == "" {
		out = report.Filename(time.Now())
	}
	if err := report.WriteFile(out, stats); err != nil {
		log.Fatal().Err(err).Msg("failed to write CSV")
	}
	log.Info().Str("path", out).Msg("results written")

	if opts.DB != "" {
		persist(opts, stats)
	}
}

// logTop logs the n best starters of this run.
func logTop(stats []sweep.StarterStats, n int) {
	if n > len(stats) {
		n = len(stats)
	}
	for i := 0; i < n; i++ {
		s := stats[i]
		log.Info().
			Int("rank", i+1).
			Str("starter", s.Starter).
			Float64("solve_rate", s.SolveRate()).
			Float64("mean_tries", s.MeanTries()).
			Int("failed", s.Failed).
			Msg("top starter")
	}
}

// persist stores the run's rows in the SQLite results store.
func persist(opts options, stats []sweep.StarterStats) {
	db, err := openDB(opts.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open results store")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate results store")
	}
	if err := insertRun(context.Background(), db, opts.Seed, stats); err != nil {
		log.Fatal().Err(err).Msg("failed to persist results")
	}
	log.Info().Str("path", opts.DB).Int("rows", len(stats)).Msg("results persisted")
}

// reportFromStore prints the best starters recorded across all stored runs.
func reportFromStore(opts options) {
	db, err := openDB(opts.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open results store")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate results store")
	}
	rows, err := bestStarters(context.Background(), db, opts.Top)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to query results store")
	}
	for i, r := range rows {
		log.Info().
			Int("rank", i+1).
			Str("starter", r.Starter).
			Int("games", r.Games).
			Float64("solve_rate", r.SolveRate).
			Float64("mean_tries", r.MeanTries).
			Msg("best starter")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
