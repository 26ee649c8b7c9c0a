package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Values below rgbFlag are ANSI palette entries; values with rgbFlag set
// carry a 24-bit true color in the low bits.
type Color uint32

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
	ColorBlack
)

const rgbFlag Color = 1 << 24

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsRGB reports whether c is a true color rather than a palette entry.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// RGB returns the red, green and blue components of a true color.
// Palette colors return zeros.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex formats a true color as #rrggbb.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
