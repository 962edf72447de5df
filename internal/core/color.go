package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Predefined colors for screen elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray

	// Difficulty palette, progressing from easy (green) to hard (pink).
	ColorModeGreen
	ColorModeMint
	ColorModeSky
	ColorModeAzure
	ColorModeRoyal
	ColorModePurple
	ColorModePink
)

// String returns the color name, used by screenshots and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorBrightMagenta:
		return "bright-magenta"
	case ColorBrightCyan:
		return "bright-cyan"
	case ColorBrightWhite:
		return "bright-white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "dark-gray"
	case ColorModeGreen:
		return "mode-green"
	case ColorModeMint:
		return "mode-mint"
	case ColorModeSky:
		return "mode-sky"
	case ColorModeAzure:
		return "mode-azure"
	case ColorModeRoyal:
		return "mode-royal"
	case ColorModePurple:
		return "mode-purple"
	case ColorModePink:
		return "mode-pink"
	default:
		return "unknown"
	}
}
