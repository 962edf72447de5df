package quiz

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/binbreak/internal/bitmode"
)

// Outcome is how a puzzle was resolved.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeTimeout
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "Pending"
	case OutcomeCorrect:
		return "Correct"
	case OutcomeIncorrect:
		return "Incorrect"
	case OutcomeTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Puzzle is one question: a target number and the candidates to pick from.
//
// Invariants: the target is one of the candidates, candidates are pairwise
// distinct, and targetRaw*ScaleFactor == target.
type Puzzle struct {
	mode       bitmode.Mode
	target     uint32 // scaled value, compared against candidates
	targetRaw  uint32 // unscaled bit pattern, shown in binary
	candidates []uint32
	selected   int // index into candidates

	timeTotal float64
	timeLeft  float64

	outcome Outcome
	points  uint32

	// The first Advance after creation carries the time spent switching
	// screens (or blocked on input) and must not count against the player.
	skipNextDelta bool
}

// NewPuzzle draws a puzzle for mode. The time budget shrinks with streak.
func NewPuzzle(mode bitmode.Mode, streak uint32, rng *rand.Rand, rules Rules) *Puzzle {
	count := mode.SuggestionCount
	if count < 1 {
		count = 1
	}
	if limit := int(mode.Range()); count > limit {
		count = limit
	}

	scale := mode.ScaleFactor
	if scale == 0 {
		scale = 1
	}

	// Rejection sampling: redraw on duplicate.
	candidates := make([]uint32, 0, count)
	for len(candidates) < count {
		raw := uint32(rng.Intn(int(mode.Range())))
		v := raw * scale
		if !slices.Contains(candidates, v) {
			candidates = append(candidates, v)
		}
	}

	// The first draw is the answer; shuffle so its position tells nothing.
	target := candidates[0]
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	total := rules.timeBudget(mode.BaseTime, streak)

	return &Puzzle{
		mode:          mode,
		target:        target,
		targetRaw:     target / scale,
		candidates:    candidates,
		selected:      0,
		timeTotal:     total,
		timeLeft:      total,
		skipNextDelta: true,
	}
}

// Mode returns the puzzle's difficulty variant.
func (p *Puzzle) Mode() bitmode.Mode { return p.mode }

// Target returns the scaled answer value.
func (p *Puzzle) Target() uint32 { return p.target }

// TargetRaw returns the unscaled answer bit pattern.
func (p *Puzzle) TargetRaw() uint32 { return p.targetRaw }

// Candidates returns a copy of the candidates in display order.
func (p *Puzzle) Candidates() []uint32 { return slices.Clone(p.candidates) }

// Selected returns the currently highlighted candidate.
func (p *Puzzle) Selected() uint32 { return p.candidates[p.selected] }

// SelectedIndex returns the index of the highlighted candidate.
func (p *Puzzle) SelectedIndex() int { return p.selected }

// TimeTotal returns the full time budget in seconds.
func (p *Puzzle) TimeTotal() float64 { return p.timeTotal }

// TimeLeft returns the remaining seconds.
func (p *Puzzle) TimeLeft() float64 { return p.timeLeft }

// Outcome returns how the puzzle was resolved, or OutcomePending.
func (p *Puzzle) Outcome() Outcome { return p.outcome }

// Resolved reports whether an outcome has been recorded.
func (p *Puzzle) Resolved() bool { return p.outcome != OutcomePending }

// Points returns the points awarded when the puzzle was resolved.
func (p *Puzzle) Points() uint32 { return p.points }

// IsCorrect reports whether v is the answer.
func (p *Puzzle) IsCorrect(v uint32) bool { return v == p.target }

// Binary returns the answer as grouped binary digits.
func (p *Puzzle) Binary() string { return p.mode.FormatBinary(p.targetRaw) }

// Advance counts dt seconds down. It does nothing once resolved, and the
// first call after creation is swallowed without consuming its delta.
func (p *Puzzle) Advance(dt float64) {
	if p.Resolved() {
		return
	}
	if p.skipNextDelta {
		p.skipNextDelta = false
		return
	}

	p.timeLeft = max(0, p.timeLeft-dt)
	if p.timeLeft <= 0 {
		p.outcome = OutcomeTimeout
	}
}

// SelectNext moves the highlight right, wrapping around.
func (p *Puzzle) SelectNext() {
	if p.Resolved() {
		return
	}
	p.selected = (p.selected + 1) % len(p.candidates)
}

// SelectPrev moves the highlight left, wrapping around.
func (p *Puzzle) SelectPrev() {
	if p.Resolved() {
		return
	}
	p.selected = (p.selected + len(p.candidates) - 1) % len(p.candidates)
}

// Guess resolves the puzzle with the highlighted candidate.
func (p *Puzzle) Guess() Outcome {
	if p.Resolved() {
		return p.outcome
	}
	if p.IsCorrect(p.Selected()) {
		p.outcome = OutcomeCorrect
	} else {
		p.outcome = OutcomeIncorrect
	}
	return p.outcome
}

// Skip gives up on the puzzle. It counts as a timeout.
func (p *Puzzle) Skip() {
	if p.Resolved() {
		return
	}
	p.outcome = OutcomeTimeout
}
