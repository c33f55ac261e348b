// Package bytesmatch tracks one pattern hit inside a scanned byte
// buffer, including the window of surrounding bytes used by the decoder
// and the highlight offsets within that window.
package bytesmatch

import (
	"strconv"

	"github.com/rulegaze/rulegaze/internal/styletext"
	"github.com/rulegaze/rulegaze/internal/yarex"
)

// Match is a located span within the scanned bytes. Ordinal means it is
// the Nth hit reported for its rule.
type Match struct {
	MatchedAgainst []byte
	Start          int
	End            int
	Length         int
	Label          string
	Ordinal        int

	SurroundingStart int
	SurroundingEnd   int
	HighlightStart   int
	HighlightEnd     int
}

// New builds a Match and computes its surrounding window, clamped to the
// buffer edges. contextBytes is the number of bytes kept on each side.
func New(data []byte, start, length int, label string, ordinal, contextBytes int) *Match {
	m := &Match{
		MatchedAgainst: data,
		Start:          start,
		End:            start + length,
		Length:         length,
		Label:          label,
		Ordinal:        ordinal,
	}
	m.SurroundingStart = max(start-contextBytes, 0)
	m.SurroundingEnd = min(m.End+contextBytes, len(data))
	m.HighlightStart = start - m.SurroundingStart
	m.HighlightEnd = m.HighlightStart + length
	return m
}

// FromStringMatch adapts one engine string hit. The label combines the
// rule name and the string identifier, e.g. "my_rule: $a".
func FromStringMatch(data []byte, ruleName string, sm yarex.StringMatch, ordinal, contextBytes int) *Match {
	label := ruleName + ": " + sm.Identifier
	return New(data, int(sm.Offset), len(sm.Data), label, ordinal, contextBytes)
}

// ForOutcome yields one Match per string hit in a matched outcome.
func ForOutcome(data []byte, o yarex.Outcome, contextBytes int) []*Match {
	out := make([]*Match, 0, len(o.Strings))
	for i, sm := range o.Strings {
		out = append(out, FromStringMatch(data, o.Rule, sm, i+1, contextBytes))
	}
	return out
}

// Bytes returns the matched span itself.
func (m *Match) Bytes() []byte {
	return m.MatchedAgainst[m.Start:m.End]
}

// Surrounding returns the matched span plus its context window.
func (m *Match) Surrounding() []byte {
	return m.MatchedAgainst[m.SurroundingStart:m.SurroundingEnd]
}

// Headline describes the match for the decode subheading.
func (m *Match) Headline() styletext.Text {
	t := styletext.Tagged(strconv.Itoa(m.Length), styletext.TagNumber)
	t = t.AppendPlain(" bytes matching ")
	t = t.AppendTagged(m.Label+" ", styletext.TagAlert)
	t = t.AppendPlain("at (start idx: ")
	t = t.AppendTagged(strconv.Itoa(m.Start), styletext.TagNumber)
	t = t.AppendPlain(", end idx: ")
	t = t.AppendTagged(strconv.Itoa(m.End), styletext.TagNumber)
	return t.AppendPlain(")")
}
