package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/binbreak/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Difficulty colors are true-color; lipgloss degrades them on
// terminals with smaller palettes.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

	core.ColorModeGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("#64FF64")).Bold(true),
	core.ColorModeMint:   lipgloss.NewStyle().Foreground(lipgloss.Color("#64FFB4")).Bold(true),
	core.ColorModeSky:    lipgloss.NewStyle().Foreground(lipgloss.Color("#64DCFF")).Bold(true),
	core.ColorModeAzure:  lipgloss.NewStyle().Foreground(lipgloss.Color("#64B4FF")).Bold(true),
	core.ColorModeRoyal:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7D78FF")).Bold(true),
	core.ColorModePurple: lipgloss.NewStyle().Foreground(lipgloss.Color("#C864FF")).Bold(true),
	core.ColorModePink:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5096")).Bold(true),
}

// colorRun is a maximal stretch of one row sharing a color.
type colorRun struct {
	color core.Color
	text  string
}

// screenRuns splits row y into color runs, left to right.
func screenRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun
	for x, w := 0, s.Width(); x < w; x++ {
		cell := s.GetCell(x, y)
		if n := len(runs); n == 0 || runs[n-1].color != cell.Color {
			runs = append(runs, colorRun{color: cell.Color})
		}
		runs[len(runs)-1].text += string(cell.Rune)
	}
	return runs
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string, one
// lipgloss render per color run so each escape sequence covers a run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, run := range screenRuns(s, y) {
			sb.WriteString(styleFor(run.color).Render(run.text))
		}
	}
	return sb.String()
}
