// internal/solver/types.go
//
// Core type definitions for the solving engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Feedback: the full 5-tile result of one guess, comparable, map-key safe.
//   - Knowledge: accumulated letter facts across the turns of one game.
//   - Config: the strategy thresholds and scan/cap limits of the selector.
//   - Outcome / GameResult: the final classification of a single game.

package solver

// WordLen is the fixed word length. The engine assumes lowercase a-z words of
// exactly this length; the words package validates before anything reaches us.
const WordLen = 5

// MaxTurns is the guess budget for a single game.
const MaxTurns = 6

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - MarkHit:     letter is correct and in the correct position.
//   - MarkPresent: letter exists in the answer but in a different position.
//   - MarkMiss:    letter does not exist in the answer at all.
type Mark uint8

const (
	MarkMiss Mark = iota
	MarkPresent
	MarkHit
)

// Feedback is the per-position result of scoring one guess against one
// target. It is a fixed array so it is comparable and usable as a map key
// when partitioning candidate sets.
type Feedback [WordLen]Mark

// AllHit reports whether every tile is a hit, i.e. the guess was the answer.
func (f Feedback) AllHit() bool {
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// String renders the feedback in the compact G/Y/B notation.
func (f Feedback) String() string {
	b := make([]byte, WordLen)
	for i, m := range f {
		switch m {
		case MarkHit:
			b[i] = 'G'
		case MarkPresent:
			b[i] = 'Y'
		default:
			b[i] = 'B'
		}
	}
	return string(b)
}

// Knowledge accumulates letter facts over the turns of a single game. It is a
// plain value: Update returns a modified copy, so each turn's state can be
// threaded explicitly through the loop and inspected in isolation.
//
// Invariant: a letter is never simultaneously known-present and excluded.
type Knowledge struct {
	// Known marks letters confirmed present somewhere in the answer.
	Known [26]bool
	// Positions holds the confirmed letter per position (0 when unknown).
	Positions [WordLen]byte
	// Excluded marks letters confirmed absent from the answer.
	Excluded [26]bool
	// Wrong marks, per letter, positions that letter is known not to occupy.
	Wrong [26][WordLen]bool
}

// Config carries the hand-tuned thresholds and scan limits of the guess
// selector. Keeping them explicit lets each regime be exercised on its own in
// tests instead of hiding constants inside the selection code.
type Config struct {
	// EliminationFloor: above this many candidates the selector only
	// considers elimination probes.
	EliminationFloor int
	// AnswerCeiling: at or below this many candidates the selector evaluates
	// the candidates themselves.
	AnswerCeiling int
	// ProbeScan: how many leading words of the full list to scan for a
	// disambiguating probe when exactly two candidates remain.
	ProbeScan int
	// EliminationScan / ExplorationScan: leading-prefix sizes scanned when
	// building the evaluation set in the respective regimes.
	EliminationScan int
	ExplorationScan int
	// EliminationCap / ExplorationCap: maximum evaluation-set sizes.
	EliminationCap int
	ExplorationCap int
	// MinEvalSet: below this many qualified words the elimination regime
	// falls back to frequency scoring and the answer regime extends with
	// leading words of the full list.
	MinEvalSet int
	// AnswerExtendScan: leading-prefix size used for that answer-regime
	// extension.
	AnswerExtendScan int
}

// DefaultConfig returns the tuned values the benchmark runs with.
func DefaultConfig() Config {
	return Config{
		EliminationFloor: 15,
		AnswerCeiling:    6,
		ProbeScan:        200,
		EliminationScan:  800,
		ExplorationScan:  600,
		EliminationCap:   150,
		ExplorationCap:   100,
		MinEvalSet:       50,
		AnswerExtendScan: 100,
	}
}

// Outcome classifies how a game ended.
type Outcome uint8

const (
	// OutcomeSolved: the target was guessed within the turn budget.
	OutcomeSolved Outcome = iota
	// OutcomeExhausted: six turns elapsed without solving.
	OutcomeExhausted
	// OutcomeContradiction: the candidate set became empty mid-game. This
	// signals an inconsistency between scoring and filtering and should not
	// occur against a genuine target, but a sweep must survive it.
	OutcomeContradiction
)

// String returns a short label for logs and reports.
func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeContradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Solved reports whether the game ended in a win.
func (o Outcome) Solved() bool { return o == OutcomeSolved }

// GameResult is the record of one simulated game.
type GameResult struct {
	Starter string   // opening word under evaluation
	Target  string   // the secret answer
	Guesses []string // guesses in order, at most MaxTurns
	Outcome Outcome
	// Turns is the winning turn (1..MaxTurns) when Outcome is OutcomeSolved,
	// otherwise the number of guesses actually made.
	Turns int
}
