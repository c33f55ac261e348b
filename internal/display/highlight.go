package display

import (
	"io"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightRuleSource writes syntax-highlighted rule source to w. The
// YARA lexer covers our rule subset; unknown terminals degrade to the
// fallback formatter.
func HighlightRuleSource(w io.Writer, source string) error {
	lexer := lexers.Get("yara")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}
	return formatter.Format(w, style, it)
}
