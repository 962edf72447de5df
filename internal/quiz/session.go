package quiz

import (
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binbreak/internal/bitmode"
	"github.com/vovakirdan/binbreak/internal/core"
	"github.com/vovakirdan/binbreak/internal/highscore"
)

// State is the session's position in the round lifecycle.
type State int

const (
	StateActive          State = iota // puzzle running, waiting for a guess
	StateResult                       // puzzle resolved, lives remain
	StatePendingGameOver              // last life lost, summary not yet shown
	StateGameOver                     // summary shown, waiting for restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateResult:
		return "result"
	case StatePendingGameOver:
		return "pending-game-over"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Options configures a Session. Zero values select the defaults.
type Options struct {
	Rules  Rules
	Seed   int64 // 0 seeds from the clock
	Logger *log.Logger
}

// Summary is the result of one finished game.
type Summary struct {
	Mode         bitmode.Mode
	Score        uint32
	Rounds       uint32
	MaxStreak    uint32
	NewHighScore bool
}

// Session owns one game in a single mode: the current puzzle, the score,
// streak and lives, and the high-score table for the mode.
//
// Lives never exceed MaxLives, and GameOver is only reached from
// PendingGameOver through an explicit confirm.
type Session struct {
	mode   bitmode.Mode
	rules  Rules
	rng    *rand.Rand
	logger *log.Logger

	puzzle   *Puzzle
	resolved bool // finalizeRound already ran for puzzle

	score     uint32
	streak    uint32
	maxStreak uint32
	rounds    uint32
	lives     uint32
	state     State

	scores          *highscore.Table
	prevHighForShow uint32
	newHighReached  bool
	exitIntended    bool
}

// NewSession starts a game in mode. scores may be nil for a game whose
// high scores are neither loaded nor saved.
func NewSession(mode bitmode.Mode, scores *highscore.Table, opts Options) *Session {
	if opts.Rules == (Rules{}) {
		opts.Rules = DefaultRules()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if scores == nil {
		scores = highscore.Open(nil, opts.Logger)
	}

	s := &Session{
		mode:   mode,
		rules:  opts.Rules,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: opts.Logger.With("mode", mode.ID),
		scores: scores,
	}
	s.reset()
	return s
}

// reset clears all game statistics and draws a fresh puzzle at streak 0.
func (s *Session) reset() {
	s.score = 0
	s.streak = 0
	s.maxStreak = 0
	s.rounds = 0
	s.lives = s.rules.startLives()
	s.state = StateActive
	s.prevHighForShow = s.scores.Get(s.mode.HighScoreKey)
	s.newHighReached = false
	s.nextPuzzle()
}

func (s *Session) nextPuzzle() {
	s.puzzle = NewPuzzle(s.mode, s.streak, s.rng, s.rules)
	s.resolved = false
	s.state = StateActive
}

// Advance moves the puzzle clock forward by dt seconds and resolves the
// round if the puzzle timed out.
func (s *Session) Advance(dt float64) {
	if s.state == StateGameOver {
		return
	}
	s.puzzle.Advance(dt)
	if s.puzzle.Resolved() && !s.resolved {
		s.finalizeRound()
	}
}

// HandleAction applies one input intent. Exit is checked first in every
// state and only raises the exit-intent flag.
func (s *Session) HandleAction(a core.Action) {
	if a == core.ActionExit {
		s.exitIntended = true
		return
	}

	if s.state == StateGameOver {
		if a == core.ActionSelect {
			s.logger.Debug("restarting game")
			s.reset()
		}
		return
	}

	if !s.puzzle.Resolved() {
		switch a {
		case core.ActionRight:
			s.puzzle.SelectNext()
		case core.ActionLeft:
			s.puzzle.SelectPrev()
		case core.ActionSelect:
			s.puzzle.Guess()
			s.finalizeRound()
		case core.ActionSkip:
			s.puzzle.Skip()
			s.finalizeRound()
		}
		return
	}

	if a != core.ActionSelect {
		return
	}
	switch s.state {
	case StatePendingGameOver:
		s.state = StateGameOver
	case StateResult:
		s.nextPuzzle()
	}
}

// finalizeRound applies scoring for the resolved puzzle exactly once.
func (s *Session) finalizeRound() {
	if s.resolved || !s.puzzle.Resolved() {
		return
	}
	s.resolved = true
	s.rounds++

	switch s.puzzle.Outcome() {
	case OutcomeCorrect:
		s.streak++
		s.maxStreak = max(s.maxStreak, s.streak)
		points := s.rules.pointsFor(s.streak)
		s.score += points
		s.puzzle.points = points
		if s.rules.LifeEvery > 0 && s.streak%s.rules.LifeEvery == 0 && s.lives < s.rules.MaxLives {
			s.lives++
		}
	default:
		s.streak = 0
		s.puzzle.points = 0
		if s.lives > 0 {
			s.lives--
		}
	}

	key := s.mode.HighScoreKey
	if prev := s.scores.Get(key); s.score > prev {
		if !s.newHighReached {
			s.prevHighForShow = prev
			s.logger.Info("new high score", "previous", prev)
		}
		s.scores.Update(key, s.score)
		s.newHighReached = true
		_ = s.scores.Persist()
	}

	if s.lives == 0 {
		s.state = StatePendingGameOver
	} else {
		s.state = StateResult
	}

	s.logger.Debug("round finalized",
		"outcome", s.puzzle.Outcome(),
		"points", s.puzzle.points,
		"score", s.score,
		"streak", s.streak,
		"lives", s.lives,
		"state", s.state)
}

// Mode returns the mode being played.
func (s *Session) Mode() bitmode.Mode { return s.mode }

// Puzzle returns the current puzzle.
func (s *Session) Puzzle() *Puzzle { return s.puzzle }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the points accumulated this game.
func (s *Session) Score() uint32 { return s.score }

// Streak returns the current run of correct answers.
func (s *Session) Streak() uint32 { return s.streak }

// MaxStreak returns the longest streak this game.
func (s *Session) MaxStreak() uint32 { return s.maxStreak }

// Rounds returns the number of resolved puzzles this game.
func (s *Session) Rounds() uint32 { return s.rounds }

// Lives returns the remaining lives.
func (s *Session) Lives() uint32 { return s.lives }

// MaxLives returns the lives cap.
func (s *Session) MaxLives() uint32 { return s.rules.MaxLives }

// PreviousHighScore returns the high score shown as the baseline: the
// stored best at game start, or the value it had before this game beat it.
func (s *Session) PreviousHighScore() uint32 { return s.prevHighForShow }

// NewHighScore reports whether this game has set a new best.
func (s *Session) NewHighScore() bool { return s.newHighReached }

// ExitIntended reports whether the player asked to leave.
func (s *Session) ExitIntended() bool { return s.exitIntended }

// TimerRunning reports whether the puzzle countdown is live, which is
// when the frame driver must keep ticking without input.
func (s *Session) TimerRunning() bool {
	return s.state == StateActive && !s.puzzle.Resolved()
}

// Finished reports whether the game has ended (summary pending or shown).
func (s *Session) Finished() bool {
	return s.state == StatePendingGameOver || s.state == StateGameOver
}

// Summary returns the statistics of the game so far.
func (s *Session) Summary() Summary {
	return Summary{
		Mode:         s.mode,
		Score:        s.score,
		Rounds:       s.rounds,
		MaxStreak:    s.maxStreak,
		NewHighScore: s.newHighReached,
	}
}

// LivesHearts renders lives as filled hearts followed by empty dots.
func (s *Session) LivesHearts() string {
	full := min(s.lives, s.rules.MaxLives)
	empty := s.rules.MaxLives - full
	return strings.Repeat("♥", int(full)) + strings.Repeat("·", int(empty))
}
