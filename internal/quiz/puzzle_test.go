package quiz

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/binbreak/internal/bitmode"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNewPuzzleCandidates(t *testing.T) {
	rng := newRNG()
	for _, mode := range bitmode.All() {
		t.Run(mode.ID, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				p := NewPuzzle(mode, 0, rng, DefaultRules())

				if len(p.candidates) != mode.SuggestionCount {
					t.Fatalf("got %d candidates, want %d", len(p.candidates), mode.SuggestionCount)
				}

				seen := make(map[uint32]bool)
				found := false
				for _, c := range p.candidates {
					if seen[c] {
						t.Fatalf("duplicate candidate %d in %v", c, p.candidates)
					}
					seen[c] = true
					if c%mode.ScaleFactor != 0 {
						t.Fatalf("candidate %d not a multiple of %d", c, mode.ScaleFactor)
					}
					if c > mode.UpperBound() {
						t.Fatalf("candidate %d above upper bound %d", c, mode.UpperBound())
					}
					if c == p.target {
						found = true
					}
				}
				if !found {
					t.Fatalf("target %d not among candidates %v", p.target, p.candidates)
				}
				if p.targetRaw*mode.ScaleFactor != p.target {
					t.Fatalf("targetRaw %d * %d != target %d", p.targetRaw, mode.ScaleFactor, p.target)
				}
			}
		})
	}
}

func TestNewPuzzleDeterministic(t *testing.T) {
	a := NewPuzzle(bitmode.Sixteen, 0, rand.New(rand.NewSource(7)), DefaultRules())
	b := NewPuzzle(bitmode.Sixteen, 0, rand.New(rand.NewSource(7)), DefaultRules())

	if a.target != b.target {
		t.Errorf("same seed should give same target: %d vs %d", a.target, b.target)
	}
	for i := range a.candidates {
		if a.candidates[i] != b.candidates[i] {
			t.Fatalf("same seed should give same candidates: %v vs %v", a.candidates, b.candidates)
		}
	}
}

func TestPuzzleTimeBudget(t *testing.T) {
	tests := []struct {
		name   string
		mode   bitmode.Mode
		streak uint32
		want   float64
	}{
		{"nibble no streak", bitmode.Four, 0, 8},
		{"nibble streak 2", bitmode.Four, 2, 7},
		{"nibble floored", bitmode.Four, 10, 5},
		{"byte streak 4", bitmode.Eight, 4, 10},
		{"word streak 30", bitmode.Sixteen, 30, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPuzzle(tt.mode, tt.streak, newRNG(), DefaultRules())
			if p.TimeTotal() != tt.want {
				t.Errorf("TimeTotal() = %v, want %v", p.TimeTotal(), tt.want)
			}
			if p.TimeLeft() != tt.want {
				t.Errorf("TimeLeft() = %v, want %v", p.TimeLeft(), tt.want)
			}
		})
	}
}

func TestPuzzleAdvanceSkipsFirstDelta(t *testing.T) {
	p := NewPuzzle(bitmode.Four, 0, newRNG(), DefaultRules())

	p.Advance(1000)
	if p.Resolved() {
		t.Fatal("first Advance must not resolve the puzzle")
	}
	if p.TimeLeft() != p.TimeTotal() {
		t.Fatalf("first Advance must not consume time, left = %v", p.TimeLeft())
	}

	p.Advance(1.5)
	if got, want := p.TimeLeft(), p.TimeTotal()-1.5; got != want {
		t.Errorf("TimeLeft() = %v, want %v", got, want)
	}

	p.Advance(p.TimeTotal())
	if p.Outcome() != OutcomeTimeout {
		t.Errorf("Outcome() = %v, want Timeout", p.Outcome())
	}
	if p.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %v, want 0", p.TimeLeft())
	}
}

func TestPuzzleAdvanceAfterOutcome(t *testing.T) {
	p := NewPuzzle(bitmode.Four, 0, newRNG(), DefaultRules())
	p.Advance(0)
	p.Skip()

	left := p.TimeLeft()
	p.Advance(1)
	if p.TimeLeft() != left {
		t.Error("Advance after outcome must not change the clock")
	}
	if p.Outcome() != OutcomeTimeout {
		t.Errorf("Skip should count as timeout, got %v", p.Outcome())
	}
}

func TestPuzzleSelectionWraps(t *testing.T) {
	p := NewPuzzle(bitmode.Eight, 0, newRNG(), DefaultRules())
	n := len(p.candidates)

	if p.SelectedIndex() != 0 {
		t.Fatalf("initial selection = %d, want 0", p.SelectedIndex())
	}

	p.SelectPrev()
	if p.SelectedIndex() != n-1 {
		t.Errorf("SelectPrev from 0 = %d, want %d", p.SelectedIndex(), n-1)
	}

	p.SelectNext()
	if p.SelectedIndex() != 0 {
		t.Errorf("SelectNext from last = %d, want 0", p.SelectedIndex())
	}

	for i := 0; i < n+1; i++ {
		p.SelectNext()
	}
	if p.SelectedIndex() != 1 {
		t.Errorf("after n+1 SelectNext = %d, want 1", p.SelectedIndex())
	}
}

func TestPuzzleGuess(t *testing.T) {
	p := NewPuzzle(bitmode.Twelve, 0, newRNG(), DefaultRules())
	for p.Selected() == p.Target() {
		p.SelectNext()
	}

	if got := p.Guess(); got != OutcomeIncorrect {
		t.Fatalf("wrong guess = %v, want Incorrect", got)
	}

	// Resolved puzzles ignore further input.
	idx := p.SelectedIndex()
	p.SelectNext()
	if p.SelectedIndex() != idx {
		t.Error("selection must not move after the puzzle is resolved")
	}
	if got := p.Guess(); got != OutcomeIncorrect {
		t.Errorf("second Guess = %v, want the recorded Incorrect", got)
	}
}

func TestBinaryShowsRawPattern(t *testing.T) {
	p := NewPuzzle(bitmode.FourShift8, 0, newRNG(), DefaultRules())
	if got, want := p.Binary(), bitmode.FourShift8.FormatBinary(p.Target()/256); got != want {
		t.Errorf("Binary() = %q, want %q", got, want)
	}
}
