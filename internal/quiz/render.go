package quiz

import (
	"fmt"
	"math"

	"github.com/vovakirdan/binbreak/internal/core"
)

// Game screen geometry.
const (
	columnWidth   = 65
	statsHeight   = 4
	numberHeight  = 5
	choicesHeight = 3
	timerHeight   = 4
	footerHeight  = 5
	screenHeight  = statsHeight + numberHeight + choicesHeight + timerHeight + footerHeight
)

// span is a run of text in one color.
type span struct {
	text  string
	color core.Color
}

func spansWidth(spans []span) int {
	w := 0
	for _, sp := range spans {
		w += core.TextWidth(sp.text)
	}
	return w
}

// drawLine draws spans horizontally centered on row y of s.
func drawLine(s *core.Screen, y int, spans []span) {
	x := (s.Width() - spansWidth(spans)) / 2
	for _, sp := range spans {
		s.DrawText(x, y, sp.text, sp.color)
		x += core.TextWidth(sp.text)
	}
}

// drawLines centers a block of lines inside s, one line per row.
func drawLines(s *core.Screen, lines [][]span) {
	y := (s.Height() - len(lines)) / 2
	for i, l := range lines {
		drawLine(s, y+i, l)
	}
}

// Render draws the game screen centered on s.
func (g *Session) Render(s *core.Screen) {
	w := min(columnWidth, s.Width()-2)
	col := s.Bounds().Centered(w, screenHeight)

	stats := core.NewRect(col.X, col.Y, col.W, statsHeight)
	number := core.NewRect(col.X, stats.Bottom(), col.W, numberHeight)
	choices := core.NewRect(col.X, number.Bottom(), col.W, choicesHeight)
	timer := core.NewRect(col.X, choices.Bottom(), col.W, timerHeight)
	footer := core.NewRect(col.X, timer.Bottom(), col.W, footerHeight)

	g.renderStats(s.Sub(stats))

	if g.state == StateGameOver {
		rest := core.NewRect(col.X, number.Y, col.W, footer.Bottom()-number.Y)
		g.renderGameOver(s.Sub(rest))
		return
	}

	g.renderNumber(s.Sub(number))
	g.renderChoices(s.Sub(choices))
	halves := timer.SplitColumns(2)
	g.renderStatus(s.Sub(halves[0]))
	g.renderTimer(s.Sub(halves[1]))
	renderInstructions(s.Sub(footer))
}

func (g *Session) renderStats(s *core.Screen) {
	s.DrawBox(s.Bounds(), core.BorderSingle, core.ColorDarkGray)

	high := span{fmt.Sprintf("Hi-Score: %d  ", g.prevHighForShow), core.ColorDarkGray}
	if g.newHighReached {
		high = span{fmt.Sprintf("Hi-Score: %d*  ", g.score), core.ColorBrightGreen}
	}

	drawLine(s, 1, []span{
		{fmt.Sprintf("Mode: %s  ", g.mode.Label), core.ColorYellow},
		high,
	})
	drawLine(s, 2, []span{
		{fmt.Sprintf("Score: %d  ", g.score), core.ColorGreen},
		{fmt.Sprintf("Streak: %d  ", g.streak), core.ColorCyan},
		{fmt.Sprintf("Max: %d  ", g.maxStreak), core.ColorBlue},
		{fmt.Sprintf("Rounds: %d  ", g.rounds), core.ColorMagenta},
		{fmt.Sprintf("Lives: %s  ", g.LivesHearts()), core.ColorRed},
	})
}

func (g *Session) renderNumber(s *core.Screen) {
	s.DrawBox(s.Bounds(), core.BorderDouble, core.ColorDarkGray)
	drawLine(s, s.Height()/2, []span{
		{g.puzzle.Binary(), core.ColorBrightWhite},
		{g.mode.ScaleSuffix(), core.ColorDarkGray},
	})
}

func (g *Session) renderChoices(s *core.Screen) {
	p := g.puzzle
	cols := s.Bounds().SplitColumns(len(p.candidates))

	for i, v := range p.candidates {
		r := cols[i]
		border, color := core.BorderSingle, core.ColorDarkGray
		if i == p.selected {
			border = core.BorderDouble
			color = outcomeColor(p.outcome, core.ColorBrightCyan)
		}
		s.DrawBox(r, border, color)

		text := g.mode.FormatCandidate(v)
		textColor := core.ColorBrightWhite
		if p.Resolved() && p.IsCorrect(v) {
			textColor = core.ColorBrightGreen
		}
		box := s.Sub(r)
		box.DrawTextCentered(box.Height()/2, text, textColor)
	}
}

func outcomeColor(o Outcome, pending core.Color) core.Color {
	switch o {
	case OutcomeCorrect:
		return core.ColorGreen
	case OutcomeIncorrect:
		return core.ColorRed
	case OutcomeTimeout:
		return core.ColorYellow
	default:
		return pending
	}
}

func (g *Session) renderStatus(s *core.Screen) {
	s.DrawTitledBox(s.Bounds(), "Status", core.ColorDarkGray, core.ColorBrightWhite)

	p := g.puzzle
	var icon, first, second string
	switch p.outcome {
	case OutcomeCorrect:
		icon, first, second = ":)", "success", fmt.Sprintf("gained %d points", p.points)
	case OutcomeIncorrect:
		icon, first, second = ":(", "incorrect", "lost a life"
	case OutcomeTimeout:
		icon, first, second = ":(", "time's up", "timeout"
	default:
		return
	}

	color := outcomeColor(p.outcome, core.ColorDefault)
	drawLine(s, 1, []span{{icon + " " + first, color}})
	drawLine(s, 2, []span{{second, color}})
}

func (g *Session) renderTimer(s *core.Screen) {
	s.DrawTitledBox(s.Bounds(), "Time Remaining", core.ColorDarkGray, core.ColorBrightWhite)

	p := g.puzzle
	ratio := 0.0
	if p.timeTotal > 0 {
		ratio = p.timeLeft / p.timeTotal
	}
	color := core.ColorRed
	switch {
	case ratio > 0.6:
		color = core.ColorGreen
	case ratio > 0.3:
		color = core.ColorYellow
	}

	inner := s.Sub(s.Bounds().Inset(1))
	renderGauge(inner, 0, ratio, color)
	drawLine(inner, 1, []span{{fmt.Sprintf("%.2f seconds left", p.timeLeft), color}})
}

// renderGauge draws a one-row ASCII progress bar filled to ratio.
func renderGauge(s *core.Screen, y int, ratio float64, color core.Color) {
	w := s.Width()
	fill := int(math.Round(float64(w) * core.ClampF(ratio, 0, 1)))
	for x := 0; x < w; x++ {
		if x < fill {
			s.SetCell(x, y, '=', color)
		} else {
			s.SetCell(x, y, ' ', core.ColorDarkGray)
		}
	}
}

func hotkey(key, desc string) []span {
	return []span{
		{"<", core.ColorBrightWhite},
		{key, core.ColorBrightCyan},
		{"> " + desc, core.ColorBrightWhite},
	}
}

func renderInstructions(s *core.Screen) {
	s.DrawBox(s.Bounds(), core.BorderSingle, core.ColorDarkGray)

	var line []span
	line = append(line, hotkey("Left Right", "select  ")...)
	line = append(line, hotkey("Enter", "confirm  ")...)
	line = append(line, hotkey("S", "skip  ")...)
	line = append(line, hotkey("Esc", "exit")...)
	drawLine(s, s.Height()/2, line)
}

func (g *Session) renderGameOver(s *core.Screen) {
	s.DrawBox(s.Bounds(), core.BorderSingle, core.ColorDarkGray)

	lines := [][]span{
		{{fmt.Sprintf("Final Score: %d", g.score), core.ColorGreen}},
		{{fmt.Sprintf("Previous High: %d", g.prevHighForShow), core.ColorYellow}},
		{{fmt.Sprintf("Rounds Played: %d", g.rounds), core.ColorMagenta}},
		{{fmt.Sprintf("Max Streak: %d", g.maxStreak), core.ColorCyan}},
	}
	if g.newHighReached {
		banner := []span{{"NEW HIGH SCORE!", core.ColorBrightGreen}}
		lines = append(lines[:1], append([][]span{banner}, lines[1:]...)...)
	}
	if g.lives == 0 {
		lines = append(lines, []span{{"You lost all your lives.", core.ColorRed}})
	}
	lines = append(lines, []span{{"Press Enter to restart or Esc to exit", core.ColorYellow}})

	drawLines(s, lines)
}
