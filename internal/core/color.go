package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
)

// Dim returns the color to use for a faded sprite at the given opacity.
func (c Color) Dim(opacity float64) Color {
	switch {
	case opacity >= 0.8:
		return c
	case opacity >= 0.4:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
