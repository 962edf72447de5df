// Package tui provides the Bubble Tea integration for binbreak.
// It owns the frame loop, maps keys to actions, and hosts the title
// menu, the game screen, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one frame of the polling loop.
type FrameMsg time.Time

// frameCmd returns a command that delivers a FrameMsg after delay.
func frameCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// framePacer measures frame deltas and keeps at most one frame
// message in flight.
type framePacer struct {
	period  time.Duration
	last    time.Time
	pending bool
}

func newFramePacer(period time.Duration, now time.Time) framePacer {
	return framePacer{period: period, last: now}
}

// step starts a frame at now and returns the seconds since the last one.
func (p *framePacer) step(now time.Time) float64 {
	dt := now.Sub(p.last)
	p.last = now
	p.pending = false
	return max(dt, 0).Seconds()
}

// schedule returns a command for the next frame, or nil when one is
// already pending. The delay is what remains of the current frame period.
func (p *framePacer) schedule(now time.Time) tea.Cmd {
	if p.pending {
		return nil
	}
	p.pending = true
	delay := max(p.period-now.Sub(p.last), 0)
	return frameCmd(delay)
}
