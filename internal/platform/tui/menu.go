package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/binbreak/internal/animation"
	"github.com/vovakirdan/binbreak/internal/bitmode"
	"github.com/vovakirdan/binbreak/internal/core"
)

// MenuOutcome is what a menu action asks the app to do next.
type MenuOutcome int

const (
	MenuStay MenuOutcome = iota
	MenuStart
	MenuExit
)

// Menu is the title screen: the animated banner over the mode list.
type Menu struct {
	entries []bitmode.Entry
	prefs   bitmode.Preferences
	anim    *animation.Engine
	help    []key.Binding
}

// NewMenu restores the cursor and signedness from prefs.
func NewMenu(prefs bitmode.Preferences, settings animation.Settings, keys KeyMap, opts ...animation.Option) *Menu {
	m := &Menu{
		entries: bitmode.Entries(),
		prefs:   prefs.Normalize(),
		anim:    animation.NewTitle(settings, opts...),
		help:    keys.menuHelp(),
	}
	m.anim.SetHighlight(m.Selected().Color())
	return m
}

// Selected returns the row under the cursor.
func (m *Menu) Selected() bitmode.Entry {
	return m.entries[m.prefs.LastIndex]
}

// SelectedMode resolves the selected row under the current preference.
func (m *Menu) SelectedMode() bitmode.Mode {
	return m.Selected().Resolve(m.prefs.NumberMode)
}

// Preferences returns the state to carry into the next menu.
func (m *Menu) Preferences() bitmode.Preferences {
	return m.prefs
}

// Animating reports whether the banner needs frames.
func (m *Menu) Animating() bool {
	return !m.anim.Paused()
}

// HandleAction applies one intent. Up and Down stop at the ends.
func (m *Menu) HandleAction(a core.Action) MenuOutcome {
	switch a {
	case core.ActionUp:
		if m.prefs.LastIndex > 0 {
			m.prefs.LastIndex--
		}
	case core.ActionDown:
		if m.prefs.LastIndex < len(m.entries)-1 {
			m.prefs.LastIndex++
		}
	case core.ActionLeft, core.ActionRight:
		m.prefs.NumberMode = m.prefs.NumberMode.Toggle()
	case core.ActionToggleAnimation:
		m.anim.Toggle()
	case core.ActionSelect:
		return MenuStart
	case core.ActionExit:
		return MenuExit
	}
	m.anim.SetHighlight(m.Selected().Color())
	return MenuStay
}

// Render draws the banner, the rows and the key help centered on s.
func (m *Menu) Render(s *core.Screen) {
	labelW := 0
	for _, e := range m.entries {
		labelW = max(labelW, core.TextWidth(e.Label))
	}
	const modeW = 8
	listW := 2 + labelW + 4 + modeW

	artW, artH := m.anim.Width(), m.anim.Height()
	total := artH + 3 + len(m.entries) + 2
	top := max(0, (s.Height()-total)/2)

	m.anim.Render(s.Sub(core.NewRect((s.Width()-artW)/2, top, artW, artH)))

	listX := max(0, (s.Width()-listW)/2)
	y := top + artH + 3
	for i, e := range m.entries {
		color := e.Color()
		marker := ' '
		if i == m.prefs.LastIndex {
			marker = '»'
		} else {
			color = core.ColorGray
		}
		row := fmt.Sprintf("%c %-*s    ", marker, labelW, strings.ToUpper(e.Label))
		s.DrawText(listX, y, row, color)

		if i == m.prefs.LastIndex {
			modeColor := e.Color()
			if !e.Supports(m.prefs.NumberMode) {
				modeColor = core.ColorDarkGray
			}
			s.DrawText(listX+core.TextWidth(row), y, fmt.Sprintf("%*s", modeW, m.prefs.NumberMode.Label()), modeColor)
		}
		y++
	}

	s.DrawTextCentered(y+1, helpLine(m.help), core.ColorDarkGray)
}

// helpLine joins bindings the way bubbles/help renders a short view.
func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
