package core

// Color is a foreground color for a screen cell.
// Frontends translate it to their own palette.
type Color uint8

// Colors used by the snake game and its screens.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

// String returns the color name, used in debug output.
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
	case ColorCyan:
		return "cyan"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightWhite:
		return "bright-white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
