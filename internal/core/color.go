package core

// Color is a palette slot for a screen cell. Games pick slots; the platform
// layer decides how each slot looks on the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorSand
	ColorBrown

	numColors
)

// ansi256 holds the 256-color code of every slot except ColorDefault.
var ansi256 = [numColors]string{
	ColorRed:          "1",
	ColorWhite:        "7",
	ColorGray:         "245",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorSand:         "180",
	ColorBrown:        "94",
}

// ANSI returns the 256-color code for c, or "" for the terminal's own color.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return ansi256[c]
}

// Palette lists every color slot in order.
func Palette() []Color {
	p := make([]Color, numColors)
	for i := range p {
		p[i] = Color(i)
	}
	return p
}
