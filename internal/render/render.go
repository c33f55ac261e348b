// Package render turns a ScanValue tree into styled text. String leaves
// are tagged by the classifier; sequences and mappings get an adaptive
// inline-vs-multiline layout driven by the configured display width.
package render

import (
	"strings"

	"github.com/rulegaze/rulegaze/internal/decode"
	"github.com/rulegaze/rulegaze/internal/logging"
	"github.com/rulegaze/rulegaze/internal/styletext"
	"github.com/rulegaze/rulegaze/internal/types"
)

var log = logging.GetLogger("render")

const (
	indentSize = 4

	// Sequences longer than this always go one element per line, no
	// matter how narrow they are.
	maxInlineElements = 3
)

// Reserved bookkeeping keys filtered out of rendered mappings. Records
// keep the full value; filtering happens at render time only.
var reservedKeys = map[string]bool{
	"rule":    true,
	"matches": true,
}

// Renderer renders value trees at a fixed display width. The zero width
// falls back to 80 columns. Rendering is pure: equal inputs and width
// produce byte-identical output.
type Renderer struct {
	Width int
}

func New(width int) *Renderer {
	return &Renderer{Width: width}
}

func (r *Renderer) width() int {
	if r.Width <= 0 {
		return 80
	}
	return r.Width
}

// Render dispatches on the value's kind. depth controls indentation
// only; recursion is bounded by the nesting of the input, not here.
func (r *Renderer) Render(v types.ScanValue, depth int) styletext.Text {
	indent := strings.Repeat(" ", (depth+1)*indentSize)
	endIndent := strings.Repeat(" ", depth*indentSize)

	switch v.Kind {
	case types.KindString:
		return styletext.Tagged(v.Str, Classify(v.Str))
	case types.KindBytes:
		return styletext.Tagged(decode.CleanBytes(v.Bytes), styletext.TagBytes)
	case types.KindNumber:
		return styletext.Tagged(v.NumString(), styletext.TagNumber)
	case types.KindBool:
		if v.Bool {
			return styletext.Tagged("true", styletext.TagTrue)
		}
		return styletext.Tagged("false", styletext.TagFalse)
	case types.KindSequence:
		return r.renderSequence(v.Seq, depth, indent, endIndent)
	case types.KindMapping:
		return r.renderMapping(v.Pairs, depth, indent, endIndent)
	default:
		log.Warn().Interface("value", v.Raw).Msg("unknown scan value variant")
		return styletext.Plain(indent + types.Stringify(v.Raw))
	}
}

func (r *Renderer) renderSequence(seq []types.ScanValue, depth int, indent, endIndent string) styletext.Text {
	if len(seq) == 0 {
		return styletext.Tagged("[]", styletext.TagBracket)
	}

	parts := make([]styletext.Text, len(seq))
	inlineWidth := len(indent) + 2 + 2*(len(seq)-1)
	for i, child := range seq {
		parts[i] = r.Render(child, depth+1)
		inlineWidth += parts[i].Len()
	}

	out := styletext.Tagged("[", styletext.TagBracket)
	if inlineWidth > r.width() || len(seq) > maxInlineElements {
		join := styletext.Plain("\n" + indent)
		out = out.Append(join)
		out = out.Append(styletext.Join(styletext.Plain(",\n"+indent), parts))
		return out.AppendTagged("\n"+endIndent+"]", styletext.TagBracket)
	}
	out = out.Append(styletext.Join(styletext.Plain(", "), parts))
	return out.AppendTagged("]", styletext.TagBracket)
}

func (r *Renderer) renderMapping(pairs []types.Pair, depth int, indent, endIndent string) styletext.Text {
	kept := make([]types.Pair, 0, len(pairs))
	for _, p := range pairs {
		if !reservedKeys[p.Key] {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return styletext.Tagged("{}", styletext.TagBracket)
	}

	out := styletext.Tagged("{\n", styletext.TagBracket)
	for i, p := range kept {
		out = out.AppendPlain(indent)
		out = out.AppendTagged(p.Key+": ", styletext.TagKey)
		out = out.Append(r.Render(p.Value, depth+1))
		if i+1 < len(kept) {
			out = out.AppendPlain(",\n")
		} else {
			out = out.AppendPlain("\n")
		}
	}
	return out.Append(styletext.Tagged(endIndent+"}", styletext.TagBracket))
}
