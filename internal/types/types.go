// Package types holds the value model shared by the engine, the session
// and the renderer.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rulegaze/rulegaze/internal/styletext"
)

// ValueKind discriminates the variants of a ScanValue.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBytes
	KindNumber
	KindBool
	KindSequence
	KindMapping
	KindUnknown
)

// Pair is one ordered key/value entry of a mapping.
type Pair struct {
	Key   string
	Value ScanValue
}

// ScanValue is the nested value tree attached to one rule evaluation
// outcome. Exactly one payload field is meaningful for a given Kind.
// Values are never mutated once built.
type ScanValue struct {
	Kind  ValueKind
	Str   string
	Bytes []byte
	Num   float64
	Bool  bool
	Seq   []ScanValue
	Pairs []Pair
	Raw   any // best-effort payload for KindUnknown
}

func String(s string) ScanValue          { return ScanValue{Kind: KindString, Str: s} }
func Bytes(b []byte) ScanValue           { return ScanValue{Kind: KindBytes, Bytes: b} }
func Number(n float64) ScanValue         { return ScanValue{Kind: KindNumber, Num: n} }
func Int(n int64) ScanValue              { return ScanValue{Kind: KindNumber, Num: float64(n)} }
func Bool(b bool) ScanValue              { return ScanValue{Kind: KindBool, Bool: b} }
func Sequence(vs ...ScanValue) ScanValue { return ScanValue{Kind: KindSequence, Seq: vs} }
func Mapping(ps ...Pair) ScanValue       { return ScanValue{Kind: KindMapping, Pairs: ps} }
func Unknown(raw any) ScanValue          { return ScanValue{Kind: KindUnknown, Raw: raw} }

// NumString formats a number the way it is rendered: integers without a
// decimal point, everything else in shortest form.
func (v ScanValue) NumString() string {
	return strconv.FormatFloat(v.Num, 'g', -1, 64)
}

// MarshalJSON emits the native JSON shape of the value so scan reports
// round-trip through encoding/json without a custom walker.
func (v ScanValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindBytes:
		return json.Marshal(string(v.Bytes))
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindSequence:
		if v.Seq == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Seq)
	case KindMapping:
		out := []byte{'{'}
		for i, p := range v.Pairs {
			if i > 0 {
				out = append(out, ',')
			}
			k, err := json.Marshal(p.Key)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(p.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, k...)
			out = append(out, ':')
			out = append(out, val...)
		}
		return append(out, '}'), nil
	default:
		return json.Marshal(Stringify(v.Raw))
	}
}

// Stringify renders an unknown payload as best-effort text.
func Stringify(raw any) string {
	return fmt.Sprintf("%v", raw)
}

// MatchRecord is one rule that matched, in callback arrival order.
// The label is the session's scan-subject header at the time of the match.
type MatchRecord struct {
	Rule  string
	Value ScanValue
	Label styletext.Text
}

// NonMatchRecord is one rule that produced no hits.
type NonMatchRecord struct {
	Rule string
}
