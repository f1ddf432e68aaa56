package cell

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
)

func TestConvertColor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		color styledtext.Color
		want  tcell.Color
	}{
		{"nil is terminal default", nil, tcell.ColorDefault},
		{"dark black", styledtext.Black.Dark(), tcell.PaletteColor(0)},
		{"dark red", styledtext.Red.Dark(), tcell.PaletteColor(1)},
		{"light red", styledtext.Red.Light(), tcell.PaletteColor(9)},
		{"light white", styledtext.White.Light(), tcell.PaletteColor(15)},
		{"rgb", styledtext.Rgb{R: 10, G: 20, B: 30}, tcell.NewRGBColor(10, 20, 30)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ConvertColor(tc.color))
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	t.Parallel()

	colors := []styledtext.Color{
		nil,
		styledtext.Black.Dark(),
		styledtext.Yellow.Dark(),
		styledtext.Magenta.Light(),
		styledtext.Rgb{R: 0, G: 0, B: 0},
		styledtext.Rgb{R: 255, G: 128, B: 1},
	}

	for _, c := range colors {
		assert.Equal(t, c, FromColor(ConvertColor(c)))
	}
}

func TestStyleRoundTrip(t *testing.T) {
	t.Parallel()

	style := styledtext.NewStyle(
		styledtext.Red.Dark(),
		styledtext.Rgb{R: 1, G: 2, B: 3},
		styledtext.EffectsOf(styledtext.Bold, styledtext.Strikethrough),
	)
	assert.Equal(t, style, FromStyle(Convert(&style)))

	assert.Equal(t, styledtext.Style{}, FromStyle(Convert(nil)), "nil style decomposes to the empty style")
}

func TestFromAttrsDropsUnsupported(t *testing.T) {
	t.Parallel()

	mask := tcell.AttrBold | tcell.AttrBlink | tcell.AttrReverse | tcell.AttrDim
	assert.Equal(t, styledtext.EffectsOf(styledtext.Bold), FromAttrs(mask))
}

func TestPrint(t *testing.T) {
	t.Parallel()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 2)

	fragment := styledtext.Plain("hi").With(styledtext.Red.Dark()).Bold()
	next := Print(screen, 3, 0, fragment)
	assert.Equal(t, 5, next)
	screen.Show()

	r, _, style, _ := screen.GetContent(3, 0)
	assert.Equal(t, 'h', r)
	fg, _, attrs := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(1), fg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	r, _, _, _ = screen.GetContent(4, 0)
	assert.Equal(t, 'i', r)
}

func TestPrintAll(t *testing.T) {
	t.Parallel()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 1)

	next := PrintAll(screen, 0, 0, []styledtext.Text{
		styledtext.Plain("ab"),
		styledtext.Plain("c").Italic(),
	})
	assert.Equal(t, 3, next)
	screen.Show()

	r, _, style, _ := screen.GetContent(2, 0)
	assert.Equal(t, 'c', r)
	_, _, attrs := style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrItalic)
}
