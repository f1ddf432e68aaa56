// Package pdf writes styled fragments into an fpdf document.
//
// PDF has no symbolic ANSI palette, so this adapter uses the RGB-approximating
// mapping: ANSI colors resolve through the fixed 16-color table before they
// reach the document. Effects map onto fpdf's font style letters. Background
// colors are not representable in fpdf's flowed-text primitive and are
// ignored.
package pdf

import (
	"iter"

	"github.com/go-pdf/fpdf"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
)

// ConvertColor resolves a color to the RGB triple written into the document.
// The second return value is false for a nil color, meaning the document
// default applies.
func ConvertColor(c styledtext.Color) (r, g, b uint8, ok bool) {
	if c == nil {
		return 0, 0, 0, false
	}
	rgb := styledtext.ToRgb(c)
	return rgb.R, rgb.G, rgb.B, true
}

// FontStyle returns the fpdf font style string for an effect set, a
// combination of the letters B, I, U and S in declared effect order.
func FontStyle(effects styledtext.Effects) string {
	letters := [...]struct {
		effect styledtext.Effect
		letter string
	}{
		{styledtext.Bold, "B"},
		{styledtext.Italic, "I"},
		{styledtext.Underline, "U"},
		{styledtext.Strikethrough, "S"},
	}

	style := ""
	for _, l := range letters {
		if effects.Has(l.effect) {
			style += l.letter
		}
	}
	return style
}

// Apply sets the document's font style and text color for a fragment style.
// A nil style resets both to their defaults (plain face, black text).
func Apply(doc *fpdf.Fpdf, style *styledtext.Style) {
	if style == nil {
		doc.SetFontStyle("")
		doc.SetTextColor(0, 0, 0)
		return
	}
	doc.SetFontStyle(FontStyle(style.Effects))
	if r, g, b, ok := ConvertColor(style.Fg); ok {
		doc.SetTextColor(int(r), int(g), int(b))
	} else {
		doc.SetTextColor(0, 0, 0)
	}
}

// Render writes one fragment as flowed text with the given line height.
// Errors surface through fpdf's sticky error state and are returned after the
// write.
func Render(doc *fpdf.Fpdf, lineHeight float64, t styledtext.Text) error {
	Apply(doc, t.Style)
	doc.Write(lineHeight, t.S)
	return doc.Error()
}

// RenderAll writes the fragments in order, stopping at the first error.
func RenderAll(doc *fpdf.Fpdf, lineHeight float64, fragments []styledtext.Text) error {
	for _, t := range fragments {
		if err := Render(doc, lineHeight, t); err != nil {
			return err
		}
	}
	return nil
}

// RenderSeq writes a single-pass sequence of fragments in order, stopping at
// the first error. An empty sequence writes nothing and succeeds.
func RenderSeq(doc *fpdf.Fpdf, lineHeight float64, fragments iter.Seq[styledtext.Text]) error {
	for t := range fragments {
		if err := Render(doc, lineHeight, t); err != nil {
			return err
		}
	}
	return nil
}
