package styledtext

// Style is a combination of an optional foreground color, an optional
// background color and a set of text effects. A nil color means the attribute
// is unspecified and the target's default applies.
type Style struct {
	Fg      Color
	Bg      Color
	Effects Effects
}

// NewStyle creates a style from its parts.
func NewStyle(fg, bg Color, effects Effects) Style {
	return Style{Fg: fg, Bg: bg, Effects: effects}
}

// Fg creates a style that only sets the foreground color.
func Fg(c Color) Style {
	return Style{Fg: c}
}

// Bg creates a style that only sets the background color.
func Bg(c Color) Style {
	return Style{Bg: c}
}

// WithEffect creates a style that only sets a single text effect.
func WithEffect(e Effect) Style {
	return Style{Effects: EffectsOf(e)}
}

// WithEffects creates a style that only sets text effects.
func WithEffects(effects Effects) Style {
	return Style{Effects: effects}
}

// And combines the style with an overriding style. Colors set by other win;
// unset colors keep the receiver's value. Effects accumulate as a set union.
// The operation is associative, and commutative only for effects.
func (s Style) And(other Style) Style {
	if other.Fg != nil {
		s.Fg = other.Fg
	}
	if other.Bg != nil {
		s.Bg = other.Bg
	}
	s.Effects = s.Effects.Union(other.Effects)
	return s
}

// Combine merges two optional styles. Both absent stays absent, a single
// present style is returned as-is (copied), and two present styles merge via
// And. The result never aliases either input.
func Combine(a, b *Style) *Style {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		merged := *b
		return &merged
	case b == nil:
		merged := *a
		return &merged
	default:
		merged := a.And(*b)
		return &merged
	}
}
