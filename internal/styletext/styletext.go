// Package styletext holds the styled-text tree produced by the renderer.
// Spans carry semantic style tags only; mapping a tag to an actual visual
// style is the display layer's job.
package styletext

import "strings"

// StyleTag is a semantic label attached to a piece of rendered text.
type StyleTag string

const (
	TagNone     StyleTag = ""
	TagURL      StyleTag = "url"
	TagNumber   StyleTag = "number"
	TagHex      StyleTag = "hex"
	TagDate     StyleTag = "date"
	TagMatchVar StyleTag = "match_var"
	TagString   StyleTag = "string"
	TagBytes    StyleTag = "bytes"
	TagKey      StyleTag = "key"
	TagBracket  StyleTag = "bracket"
	TagTrue     StyleTag = "bool_true"
	TagFalse    StyleTag = "bool_false"

	// Tags used by scan headers and summaries rather than value trees.
	TagSubject       StyleTag = "subject"
	TagRuleSet       StyleTag = "rule_set"
	TagAlert         StyleTag = "alert"
	TagAddress       StyleTag = "address"
	TagDim           StyleTag = "dim"
	TagDecodeHeading StyleTag = "decode_heading"
)

// Span is one run of text with a single style tag.
type Span struct {
	Content string
	Tag     StyleTag
}

// Text is an ordered sequence of spans. Indentation and newlines are
// embedded literally in span content. The zero value is an empty text.
type Text struct {
	spans []Span
}

// Plain builds an unstyled Text from a string.
func Plain(s string) Text {
	return Tagged(s, TagNone)
}

// Tagged builds a single-span Text.
func Tagged(s string, tag StyleTag) Text {
	if s == "" {
		return Text{}
	}
	return Text{spans: []Span{{Content: s, Tag: tag}}}
}

// Spans returns the underlying spans. Callers must not mutate the result.
func (t Text) Spans() []Span {
	return t.spans
}

// Append returns t followed by other.
func (t Text) Append(other Text) Text {
	spans := make([]Span, 0, len(t.spans)+len(other.spans))
	spans = append(spans, t.spans...)
	spans = append(spans, other.spans...)
	return Text{spans: spans}
}

// AppendTagged returns t followed by a single tagged span.
func (t Text) AppendTagged(s string, tag StyleTag) Text {
	return t.Append(Tagged(s, tag))
}

// AppendPlain returns t followed by an unstyled span.
func (t Text) AppendPlain(s string) Text {
	return t.Append(Plain(s))
}

// Join concatenates parts with sep between each pair.
func Join(sep Text, parts []Text) Text {
	var out Text
	for i, p := range parts {
		if i > 0 {
			out = out.Append(sep)
		}
		out = out.Append(p)
	}
	return out
}

// String returns the text without styling.
func (t Text) String() string {
	var b strings.Builder
	for _, s := range t.spans {
		b.WriteString(s.Content)
	}
	return b.String()
}

// Len is the number of characters in the unstyled text.
func (t Text) Len() int {
	n := 0
	for _, s := range t.spans {
		n += len(s.Content)
	}
	return n
}

// Empty reports whether the text has no content.
func (t Text) Empty() bool {
	return t.Len() == 0
}
