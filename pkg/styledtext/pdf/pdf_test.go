package pdf

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
)

func TestConvertColor(t *testing.T) {
	t.Parallel()

	_, _, _, ok := ConvertColor(nil)
	assert.False(t, ok, "nil color must report the document default")

	r, g, b, ok := ConvertColor(styledtext.Red.Dark())
	require.True(t, ok)
	assert.Equal(t, [3]uint8{170, 0, 0}, [3]uint8{r, g, b}, "ansi colors resolve through the approximation table")

	r, g, b, ok = ConvertColor(styledtext.Rgb{R: 12, G: 34, B: 56})
	require.True(t, ok)
	assert.Equal(t, [3]uint8{12, 34, 56}, [3]uint8{r, g, b})
}

func TestFontStyle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		effects styledtext.Effects
		want    string
	}{
		{"none", 0, ""},
		{"bold", styledtext.EffectsOf(styledtext.Bold), "B"},
		{"italic", styledtext.EffectsOf(styledtext.Italic), "I"},
		{"underline", styledtext.EffectsOf(styledtext.Underline), "U"},
		{"strikethrough", styledtext.EffectsOf(styledtext.Strikethrough), "S"},
		{"all", styledtext.EffectsOf(
			styledtext.Bold, styledtext.Italic, styledtext.Underline, styledtext.Strikethrough,
		), "BIUS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, FontStyle(tc.effects))
		})
	}
}

func newDoc() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	return doc
}

func TestRender(t *testing.T) {
	t.Parallel()

	doc := newDoc()
	err := Render(doc, 5, styledtext.Plain("test").Bold().With(styledtext.Red.Dark()))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, doc.Output(buf))
	assert.NotZero(t, buf.Len())
}

func TestRenderAll(t *testing.T) {
	t.Parallel()

	doc := newDoc()
	err := RenderAll(doc, 5, []styledtext.Text{
		styledtext.Plain("one ").Italic(),
		styledtext.Plain("two"),
		styledtext.Plain(" three").With(styledtext.Rgb{R: 0, G: 128, B: 255}),
	})
	require.NoError(t, err)
	require.NoError(t, doc.Error())
}

func TestRenderAllEmpty(t *testing.T) {
	t.Parallel()

	doc := newDoc()
	require.NoError(t, RenderAll(doc, 5, nil))
}

func TestRenderSeq(t *testing.T) {
	t.Parallel()

	fragments := []styledtext.Text{
		styledtext.Plain("seq ").Underline(),
		styledtext.Plain("pass"),
	}
	doc := newDoc()
	err := RenderSeq(doc, 5, func(yield func(styledtext.Text) bool) {
		for _, f := range fragments {
			if !yield(f) {
				return
			}
		}
	})
	require.NoError(t, err)
	require.NoError(t, doc.Error())
}
