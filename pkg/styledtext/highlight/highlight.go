// Package highlight converts chroma syntax-highlighting output into styled
// fragments.
//
// This is a source adapter: conversion only runs from chroma's model into the
// core model. Chroma colors are 24-bit values, so colors convert as RGB;
// bold, italic and underline carry over, and attributes chroma leaves unset
// stay unset.
package highlight

import (
	"github.com/alecthomas/chroma/v2"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
)

// FromColour reconstructs a color from a chroma colour. Unset colours come
// back as nil.
func FromColour(c chroma.Colour) styledtext.Color {
	if !c.IsSet() {
		return nil
	}
	return styledtext.Rgb{R: c.Red(), G: c.Green(), B: c.Blue()}
}

// FromEntry reconstructs a fragment style from a resolved chroma style entry.
// Only explicit "yes" trileans become effects; "pass" and "no" leave the
// effect unset.
func FromEntry(entry chroma.StyleEntry) styledtext.Style {
	style := styledtext.Style{
		Fg: FromColour(entry.Colour),
		Bg: FromColour(entry.Background),
	}
	style.Effects = style.Effects.
		Set(styledtext.Bold, entry.Bold == chroma.Yes).
		Set(styledtext.Italic, entry.Italic == chroma.Yes).
		Set(styledtext.Underline, entry.Underline == chroma.Yes)
	return style
}

// FromToken pairs a token's text with the style resolved for it. The token's
// bytes are carried over exactly.
func FromToken(entry chroma.StyleEntry, token chroma.Token) styledtext.Text {
	return styledtext.Styled(token.Value, FromEntry(entry))
}

// Fragments drains a token iterator, resolving every token against the given
// chroma style, and returns the resulting fragments in token order.
func Fragments(style *chroma.Style, tokens chroma.Iterator) []styledtext.Text {
	var fragments []styledtext.Text
	for token := tokens(); token != chroma.EOF; token = tokens() {
		fragments = append(fragments, FromToken(style.Get(token.Type), token))
	}
	return fragments
}
