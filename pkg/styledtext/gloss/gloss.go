// Package gloss converts styled fragments to and from lipgloss styles.
//
// The adapter uses the symbolic-preserving mapping: ANSI palette colors map
// onto lipgloss's numeric color strings "0".."15" and RGB colors onto hex
// strings. The reverse conversion relies exclusively on lipgloss's public
// getters; color kinds that this model cannot express (adaptive colors,
// 256-palette indices above 15) convert to unset.
package gloss

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
)

// ColorString returns the lipgloss color token for a color: a palette index
// "0".."15" for symbolic colors, "#rrggbb" for RGB colors, "" for nil.
func ColorString(c styledtext.Color) string {
	switch c := c.(type) {
	case styledtext.Ansi:
		return strconv.Itoa(c.Index())
	case styledtext.Rgb:
		return c.String()
	default:
		return ""
	}
}

// ConvertColor maps a color onto lipgloss's color model. A nil color maps to
// lipgloss.NoColor.
func ConvertColor(c styledtext.Color) lipgloss.TerminalColor {
	if c == nil {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(ColorString(c))
}

// Convert builds a lipgloss style carrying the fragment style's colors and
// effects, using the default lipgloss renderer.
func Convert(style styledtext.Style) lipgloss.Style {
	return Apply(lipgloss.NewStyle(), style)
}

// Apply copies the fragment style's colors and effects onto an existing
// lipgloss style, leaving unset attributes untouched.
func Apply(out lipgloss.Style, style styledtext.Style) lipgloss.Style {
	if style.Fg != nil {
		out = out.Foreground(ConvertColor(style.Fg))
	}
	if style.Bg != nil {
		out = out.Background(ConvertColor(style.Bg))
	}
	if style.Effects.Has(styledtext.Bold) {
		out = out.Bold(true)
	}
	if style.Effects.Has(styledtext.Italic) {
		out = out.Italic(true)
	}
	if style.Effects.Has(styledtext.Underline) {
		out = out.Underline(true)
	}
	if style.Effects.Has(styledtext.Strikethrough) {
		out = out.Strikethrough(true)
	}
	return out
}

// FromColor reconstructs a color from a lipgloss terminal color. Unset and
// unrecognized colors come back as nil.
func FromColor(c lipgloss.TerminalColor) styledtext.Color {
	switch c := c.(type) {
	case lipgloss.Color:
		return parseColorToken(string(c))
	case lipgloss.ANSIColor:
		return paletteColor(int(c))
	default:
		// NoColor, adaptive and complete colors have no counterpart here.
		return nil
	}
}

// FromStyle reconstructs a fragment style from a lipgloss style via its
// public getters. Attributes lipgloss can express but this model cannot are
// dropped; converting the result forward again reproduces every attribute the
// two models share.
func FromStyle(s lipgloss.Style) styledtext.Style {
	style := styledtext.Style{
		Fg: FromColor(s.GetForeground()),
		Bg: FromColor(s.GetBackground()),
	}
	style.Effects = style.Effects.
		Set(styledtext.Bold, s.GetBold()).
		Set(styledtext.Italic, s.GetItalic()).
		Set(styledtext.Underline, s.GetUnderline()).
		Set(styledtext.Strikethrough, s.GetStrikethrough())
	return style
}

func parseColorToken(s string) styledtext.Color {
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return paletteColor(n)
}

func parseHex(s string) styledtext.Color {
	if len(s) != 7 {
		return nil
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return nil
		}
		rgb[i] = uint8(v)
	}
	return styledtext.Rgb{R: rgb[0], G: rgb[1], B: rgb[2]}
}

func paletteColor(n int) styledtext.Color {
	switch {
	case n >= 0 && n < 8:
		return styledtext.AnsiColor(n).Dark()
	case n >= 8 && n < 16:
		return styledtext.AnsiColor(n - 8).Light()
	default:
		return nil
	}
}

// Renderer writes lipgloss-rendered fragments to a sink at a fixed color
// profile.
type Renderer struct {
	base *lipgloss.Renderer
	w    io.Writer
}

// NewRenderer creates a renderer bound to w rendering at the given profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{
		base: lipgloss.NewRenderer(w, termenv.WithProfile(profile)),
		w:    w,
	}
}

// Render writes one fragment. Failures are I/O errors from the sink,
// propagated unchanged.
func (r *Renderer) Render(t styledtext.Text) error {
	out := t.S
	if t.Style != nil {
		out = Apply(r.base.NewStyle(), *t.Style).Render(t.S)
	}
	_, err := io.WriteString(r.w, out)
	return err
}

// RenderAll writes the fragments in order, stopping at the first write error.
func (r *Renderer) RenderAll(fragments []styledtext.Text) error {
	for _, t := range fragments {
		if err := r.Render(t); err != nil {
			return err
		}
	}
	return nil
}

// RenderSeq writes a single-pass sequence of fragments in order, stopping at
// the first write error.
func (r *Renderer) RenderSeq(fragments iter.Seq[styledtext.Text]) error {
	for t := range fragments {
		if err := r.Render(t); err != nil {
			return err
		}
	}
	return nil
}

// Render writes one fragment to w at full color depth.
func Render(w io.Writer, t styledtext.Text) error {
	return NewRenderer(w, termenv.TrueColor).Render(t)
}

// RenderAll writes the fragments to w in order at full color depth.
func RenderAll(w io.Writer, fragments []styledtext.Text) error {
	return NewRenderer(w, termenv.TrueColor).RenderAll(fragments)
}
