// Package styledtext defines a small, backend-agnostic model for styled text:
// strings annotated with foreground and background colors and text effects.
//
// The central type is Text, a string paired with an optional Style. Values are
// built directly or with the fluent builder methods and then handed to one of
// the backend adapter packages (ansi, gloss, cell, highlight, pdf) for
// conversion into a concrete library's representation or for rendering.
//
//	t := styledtext.Plain("warning").With(styledtext.Red.Dark()).Bold()
//	err := ansi.Render(os.Stdout, t)
//
// All model types are plain values with no shared mutable state; they can be
// copied and passed between goroutines freely.
package styledtext

// Text is a styled fragment: a string with an optional style annotation. A nil
// Style means the fragment is plain. Text is the atomic unit consumed by the
// backend adapters.
//
// The builder methods never mutate a previously returned value: the style is
// cloned before every change, so fragments derived from a common base are
// independent.
type Text struct {
	// S is the content of the fragment.
	S string
	// Style is the style of the fragment, or nil for plain text.
	Style *Style
}

// New creates a styled fragment from a string and an optional style.
func New(s string, style *Style) Text {
	return Text{S: s, Style: style}
}

// Plain creates an unstyled fragment.
func Plain(s string) Text {
	return Text{S: s}
}

// Styled creates a fragment with the given style.
func Styled(s string, style Style) Text {
	return Text{S: s, Style: &style}
}

// With sets the foreground color.
func (t Text) With(fg Color) Text {
	style := t.cloneStyle()
	style.Fg = fg
	t.Style = &style
	return t
}

// On sets the background color.
func (t Text) On(bg Color) Text {
	style := t.cloneStyle()
	style.Bg = bg
	t.Style = &style
	return t
}

// Bold sets the bold effect.
func (t Text) Bold() Text {
	return t.WithEffect(Bold)
}

// Italic sets the italic effect.
func (t Text) Italic() Text {
	return t.WithEffect(Italic)
}

// Underline sets the underline effect.
func (t Text) Underline() Text {
	return t.WithEffect(Underline)
}

// Strikethrough sets the strikethrough effect.
func (t Text) Strikethrough() Text {
	return t.WithEffect(Strikethrough)
}

// WithEffect sets an arbitrary effect.
func (t Text) WithEffect(e Effect) Text {
	style := t.cloneStyle()
	style.Effects = style.Effects.With(e)
	t.Style = &style
	return t
}

// StyleMut returns the fragment's style for in-place modification, lazily
// materializing a default style if the fragment is plain.
func (t *Text) StyleMut() *Style {
	if t.Style == nil {
		t.Style = &Style{}
	}
	return t.Style
}

func (t Text) cloneStyle() Style {
	if t.Style != nil {
		return *t.Style
	}
	return Style{}
}
