package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext/highlight"
)

// highlightFile tokenises a file and converts the highlighted tokens into
// styled fragments using the given chroma theme. The lexer is picked from the
// explicit name, the file name, or content analysis, in that order.
func highlightFile(path, theme, lexerName string) ([]styledtext.Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Match(path)
	}
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	tokens, err := lexer.Tokenise(nil, content)
	if err != nil {
		return nil, fmt.Errorf("tokenising %s: %w", path, err)
	}

	return highlight.Fragments(styles.Get(theme), tokens), nil
}

// pickProfile decides the ANSI color depth for the given sink and color mode.
// In auto mode styling is kept only when the sink is a terminal.
func pickProfile(w io.Writer, mode string) termenv.Profile {
	switch mode {
	case "always":
		return termenv.TrueColor
	case "never":
		return termenv.Ascii
	default:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return termenv.ColorProfile()
		}
		return termenv.Ascii
	}
}
