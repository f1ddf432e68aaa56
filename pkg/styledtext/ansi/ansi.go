// Package ansi renders styled fragments as ANSI escape sequences using
// termenv.
//
// The adapter uses the symbolic-preserving mapping: ANSI palette colors map
// onto termenv's 16-color constants (dark variants onto ANSIBlack..ANSIWhite,
// light variants onto the bright constants) and never go through an RGB
// approximation. RGB colors map onto termenv's 24-bit color type and are
// downgraded by termenv itself when the active profile cannot express them.
package ansi

import (
	"io"
	"iter"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
)

// ConvertColor maps a color onto termenv's color model. A nil color maps to
// termenv.NoColor.
func ConvertColor(c styledtext.Color) termenv.Color {
	switch c := c.(type) {
	case styledtext.Ansi:
		return termenv.ANSIColor(c.Index())
	case styledtext.Rgb:
		return termenv.RGBColor(c.String())
	default:
		return termenv.NoColor{}
	}
}

// Convert builds the termenv style for a fragment at the given color profile.
// Effects are applied before colors, so the escape sequence lists effect codes
// first. Unset colors and effects are simply absent from the sequence.
func Convert(profile termenv.Profile, t styledtext.Text) termenv.Style {
	out := profile.String(t.S)
	if t.Style == nil {
		return out
	}
	for _, e := range t.Style.Effects.List() {
		switch e {
		case styledtext.Bold:
			out = out.Bold()
		case styledtext.Italic:
			out = out.Italic()
		case styledtext.Underline:
			out = out.Underline()
		case styledtext.Strikethrough:
			out = out.CrossOut()
		}
	}
	if t.Style.Fg != nil {
		out = out.Foreground(profile.Convert(ConvertColor(t.Style.Fg)))
	}
	if t.Style.Bg != nil {
		out = out.Background(profile.Convert(ConvertColor(t.Style.Bg)))
	}
	return out
}

// Renderer writes fragments at a fixed color profile. Use termenv.Ascii to
// strip all styling, e.g. when the output is not a terminal.
type Renderer struct {
	Profile termenv.Profile
}

// Render writes one fragment to w. Failures are I/O errors from w, propagated
// unchanged.
func (r Renderer) Render(w io.Writer, t styledtext.Text) error {
	_, err := io.WriteString(w, Convert(r.Profile, t).String())
	return err
}

// RenderAll writes the fragments to w in order, stopping at the first write
// error.
func (r Renderer) RenderAll(w io.Writer, fragments []styledtext.Text) error {
	for _, t := range fragments {
		if err := r.Render(w, t); err != nil {
			return err
		}
	}
	return nil
}

// RenderSeq writes a single-pass sequence of fragments to w in order, stopping
// at the first write error. An empty sequence writes nothing and succeeds.
func (r Renderer) RenderSeq(w io.Writer, fragments iter.Seq[styledtext.Text]) error {
	for t := range fragments {
		if err := r.Render(w, t); err != nil {
			return err
		}
	}
	return nil
}

// Render writes one fragment to w at full color depth.
func Render(w io.Writer, t styledtext.Text) error {
	return Renderer{Profile: termenv.TrueColor}.Render(w, t)
}

// RenderAll writes the fragments to w in order at full color depth.
func RenderAll(w io.Writer, fragments []styledtext.Text) error {
	return Renderer{Profile: termenv.TrueColor}.RenderAll(w, fragments)
}

// RenderSeq writes a sequence of fragments to w in order at full color depth.
func RenderSeq(w io.Writer, fragments iter.Seq[styledtext.Text]) error {
	return Renderer{Profile: termenv.TrueColor}.RenderSeq(w, fragments)
}
