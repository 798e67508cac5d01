package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var matchLexer = lexers.Match

// Colorize turns text into tview color-tagged text. Token values are escaped
// so the file text itself is never read as tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	var plain strings.Builder
	flushPlain := func() {
		if plain.Len() > 0 {
			sb.WriteString(tview.Escape(plain.String()))
			plain.Reset()
		}
	}
	for _, token := range iterator.Tokens() {
		color := style.Get(token.Type)
		if color.IsZero() || !color.Colour.IsSet() {
			plain.WriteString(token.Value)
			continue
		}
		flushPlain()
		sb.WriteString("[" + color.Colour.String() + "]")
		sb.WriteString(tview.Escape(token.Value))
		sb.WriteString("[-]")
	}
	flushPlain()

	return sb.String(), nil
}

// ColorizeFile colorizes text when a lexer is registered for the file name.
// ok is false when nothing matches and the text should be shown as-is.
func ColorizeFile(name, text string) (colorized string, ok bool, err error) {
	lexer := matchLexer(name)
	if lexer == nil {
		return "", false, nil
	}
	colorized, err = Colorize(text, DefaultStyle, chroma.Coalesce(lexer))
	if err != nil {
		return "", false, err
	}
	return colorized, true, nil
}
