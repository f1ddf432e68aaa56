// Package cell converts styled fragments to and from tcell styles and draws
// fragments onto a tcell screen.
//
// The adapter uses the symbolic-preserving mapping: ANSI palette colors map
// onto tcell's 16 palette slots and RGB colors onto tcell's 24-bit colors.
// tcell is a display-only backend: there is no io.Writer render; fragments are
// drawn onto a Screen, which owns the output loop.
package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
)

// ConvertColor maps a color onto tcell's color model. A nil color maps to
// tcell.ColorDefault, the terminal's own default.
func ConvertColor(c styledtext.Color) tcell.Color {
	switch c := c.(type) {
	case styledtext.Ansi:
		return tcell.PaletteColor(c.Index())
	case styledtext.Rgb:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// FromColor reconstructs a color from a tcell color. The 16 base palette
// slots come back as symbolic colors, RGB colors come back exact, the default
// color comes back as nil, and any other valid color falls back to its RGB
// value.
func FromColor(c tcell.Color) styledtext.Color {
	if c == tcell.ColorDefault {
		return nil
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return styledtext.Rgb{R: uint8(r), G: uint8(g), B: uint8(b)}
	}
	if idx := int(c - tcell.ColorValid); idx >= 0 && idx < 16 {
		if idx < 8 {
			return styledtext.AnsiColor(idx).Dark()
		}
		return styledtext.AnsiColor(idx - 8).Light()
	}
	if hex := c.Hex(); hex >= 0 {
		return styledtext.Rgb{
			R: uint8(hex >> 16),
			G: uint8(hex >> 8),
			B: uint8(hex),
		}
	}
	return nil
}

// ConvertEffects maps an effect set onto tcell's attribute mask.
func ConvertEffects(effects styledtext.Effects) tcell.AttrMask {
	var mask tcell.AttrMask
	if effects.Has(styledtext.Bold) {
		mask |= tcell.AttrBold
	}
	if effects.Has(styledtext.Italic) {
		mask |= tcell.AttrItalic
	}
	if effects.Has(styledtext.Underline) {
		mask |= tcell.AttrUnderline
	}
	if effects.Has(styledtext.Strikethrough) {
		mask |= tcell.AttrStrikeThrough
	}
	return mask
}

// FromAttrs reconstructs an effect set from a tcell attribute mask.
// Attributes without a counterpart here (blink, dim, reverse) are dropped.
func FromAttrs(mask tcell.AttrMask) styledtext.Effects {
	var effects styledtext.Effects
	effects = effects.
		Set(styledtext.Bold, mask&tcell.AttrBold != 0).
		Set(styledtext.Italic, mask&tcell.AttrItalic != 0).
		Set(styledtext.Underline, mask&tcell.AttrUnderline != 0).
		Set(styledtext.Strikethrough, mask&tcell.AttrStrikeThrough != 0)
	return effects
}

// Convert builds a tcell style from an optional fragment style. A nil style
// yields tcell.StyleDefault.
func Convert(style *styledtext.Style) tcell.Style {
	if style == nil {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.
		Foreground(ConvertColor(style.Fg)).
		Background(ConvertColor(style.Bg)).
		Attributes(ConvertEffects(style.Effects))
}

// FromStyle reconstructs a fragment style from a tcell style via Decompose.
func FromStyle(style tcell.Style) styledtext.Style {
	fg, bg, attrs := style.Decompose()
	return styledtext.Style{
		Fg:      FromColor(fg),
		Bg:      FromColor(bg),
		Effects: FromAttrs(attrs),
	}
}

// Print draws a fragment onto the screen starting at column x of row y and
// returns the column after the last rune written. The fragment's bytes are
// drawn as-is, one cell per rune.
func Print(screen tcell.Screen, x, y int, t styledtext.Text) int {
	style := Convert(t.Style)
	for _, r := range t.S {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// PrintAll draws fragments left to right on one row, starting at column x,
// and returns the column after the last rune written.
func PrintAll(screen tcell.Screen, x, y int, fragments []styledtext.Text) int {
	for _, t := range fragments {
		x = Print(screen, x, y, t)
	}
	return x
}
