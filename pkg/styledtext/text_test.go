package styledtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextBuilders(t *testing.T) {
	t.Parallel()

	plain := Plain("test")
	assert.Equal(t, "test", plain.S)
	assert.Nil(t, plain.Style)

	bold := Plain("test").Bold()
	require.NotNil(t, bold.Style)
	assert.True(t, bold.Style.Effects.Has(Bold))
	assert.Equal(t, EffectsOf(Bold), bold.Style.Effects, "no other effect may be set")

	styled := Plain("test").
		With(Red.Light()).
		On(Green.Dark()).
		Italic().
		WithEffect(Strikethrough)
	require.NotNil(t, styled.Style)
	assert.Equal(t, Red.Light(), styled.Style.Fg)
	assert.Equal(t, Green.Dark(), styled.Style.Bg)
	assert.Equal(t, EffectsOf(Italic, Strikethrough), styled.Style.Effects)
}

func TestTextBuilderEquivalence(t *testing.T) {
	t.Parallel()

	s1 := Styled("test", Fg(Red.Dark()))
	s2 := Plain("test").With(Red.Dark())
	assert.Equal(t, s1, s2)
}

func TestTextBuildersDoNotAlias(t *testing.T) {
	t.Parallel()

	base := Plain("x").Bold()
	derived := base.Italic()

	assert.Equal(t, EffectsOf(Bold), base.Style.Effects, "deriving a fragment must not mutate its base")
	assert.Equal(t, EffectsOf(Bold, Italic), derived.Style.Effects)
}

func TestTextStyleMut(t *testing.T) {
	t.Parallel()

	plain := Plain("x")
	style := plain.StyleMut()
	require.NotNil(t, style)
	assert.Same(t, plain.Style, style)

	style.Fg = Cyan.Dark()
	assert.Equal(t, Cyan.Dark(), plain.Style.Fg)
}

func TestTextValueCopyPreservesContentAndStyle(t *testing.T) {
	t.Parallel()

	orig := Plain("x").Italic()
	dup := orig
	assert.Equal(t, Styled("x", WithEffect(Italic)), dup)
}

func TestTextOnlyBackground(t *testing.T) {
	t.Parallel()

	s := Plain("hi").On(Green.Light())
	require.NotNil(t, s.Style)
	assert.Nil(t, s.Style.Fg)
	assert.Equal(t, Green.Light(), s.Style.Bg)
	assert.True(t, s.Style.Effects.Empty())

	assert.Equal(t, Rgb{R: 85, G: 255, B: 85}, ToRgb(s.Style.Bg))
}
