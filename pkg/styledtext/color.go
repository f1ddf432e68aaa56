package styledtext

import "fmt"

// AnsiColor is one of the eight base colors of the conventional terminal
// palette. Each base color exists in a dark and a light variant; the variant
// is tracked separately by AnsiMode.
type AnsiColor uint8

const (
	Black AnsiColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// AnsiMode selects the brightness variant of an AnsiColor.
type AnsiMode uint8

const (
	// DarkMode selects the dark variant (palette slots 0-7).
	DarkMode AnsiMode = iota
	// LightMode selects the light ("bright") variant (palette slots 8-15).
	LightMode
)

// Color is a color value attached to a styled fragment. It has exactly two
// concrete shapes: Ansi, a symbolic palette color, and Rgb, a direct 24-bit
// color. A nil Color means "unspecified" and is distinct from any explicit
// color. The two shapes are never coerced into each other implicitly; the only
// bridge is the fixed approximation table exposed by AnsiRGB, and that bridge
// is one-directional.
type Color interface {
	isColor()
	fmt.Stringer
}

// Ansi is a symbolic palette color: a base color plus a brightness mode.
type Ansi struct {
	Color AnsiColor
	Mode  AnsiMode
}

// Rgb is a direct 24-bit color.
type Rgb struct {
	R, G, B uint8
}

func (Ansi) isColor() {}
func (Rgb) isColor()  {}

// Dark returns the dark variant of the base color as a Color.
func (c AnsiColor) Dark() Color {
	return Ansi{Color: c, Mode: DarkMode}
}

// Light returns the light variant of the base color as a Color.
func (c AnsiColor) Light() Color {
	return Ansi{Color: c, Mode: LightMode}
}

// Index returns the palette slot of the color in the conventional 16-color
// layout: 0-7 for dark variants, 8-15 for light variants.
func (c Ansi) Index() int {
	if c.Mode == LightMode {
		return int(c.Color) + 8
	}
	return int(c.Color)
}

var ansiColorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c AnsiColor) String() string {
	if int(c) < len(ansiColorNames) {
		return ansiColorNames[c]
	}
	return fmt.Sprintf("ansi(%d)", uint8(c))
}

func (m AnsiMode) String() string {
	if m == LightMode {
		return "light"
	}
	return "dark"
}

func (c Ansi) String() string {
	return fmt.Sprintf("%s %s", c.Mode, c.Color)
}

func (c Rgb) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ansiPalette is the conventional VGA 16-color palette: 8 dark entries
// followed by 8 light entries, indexed by Ansi.Index. It is a fixed historical
// approximation, not a computed transform, and must not be altered.
var ansiPalette = [16]Rgb{
	{0, 0, 0},       // black
	{170, 0, 0},     // red
	{0, 170, 0},     // green
	{170, 85, 0},    // yellow
	{0, 0, 170},     // blue
	{170, 0, 170},   // magenta
	{0, 170, 170},   // cyan
	{170, 170, 170}, // white
	{85, 85, 85},    // bright black
	{255, 85, 85},   // bright red
	{85, 255, 85},   // bright green
	{255, 255, 85},  // bright yellow
	{85, 85, 255},   // bright blue
	{255, 85, 255},  // bright magenta
	{85, 255, 255},  // bright cyan
	{255, 255, 255}, // bright white
}

// AnsiRGB returns the RGB approximation of a symbolic palette color. Backends
// without a symbolic palette of their own use this table; backends with one
// map Ansi values onto their own constants instead and never go through RGB.
func AnsiRGB(color AnsiColor, mode AnsiMode) (r, g, b uint8) {
	entry := ansiPalette[Ansi{Color: color, Mode: mode}.Index()]
	return entry.R, entry.G, entry.B
}

// ToRgb resolves any Color to its 24-bit value: Rgb values pass through
// unchanged, Ansi values go through the approximation table.
func ToRgb(c Color) Rgb {
	switch c := c.(type) {
	case Rgb:
		return c
	case Ansi:
		return ansiPalette[c.Index()]
	default:
		return Rgb{}
	}
}
