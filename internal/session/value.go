package session

import (
	"github.com/rulegaze/rulegaze/internal/types"
	"github.com/rulegaze/rulegaze/internal/yarex"
)

// FromOutcome converts an engine outcome into the renderer's value
// model. The shape mirrors what the engine reports per rule: the
// bookkeeping keys (rule, matches) are kept here and filtered later by
// the renderer, never dropped from the record itself.
func FromOutcome(o yarex.Outcome) types.ScanValue {
	tags := make([]types.ScanValue, len(o.Tags))
	for i, tag := range o.Tags {
		tags[i] = types.String(tag)
	}

	meta := make([]types.Pair, len(o.Meta))
	for i, mp := range o.Meta {
		meta[i] = types.Pair{Key: mp.Key, Value: metaValue(mp.Value)}
	}

	strs := make([]types.ScanValue, len(o.Strings))
	for i, sm := range o.Strings {
		strs[i] = types.Sequence(
			types.Int(sm.Offset),
			types.String(sm.Identifier),
			types.Bytes(sm.Data),
		)
	}

	return types.Mapping(
		types.Pair{Key: "rule", Value: types.String(o.Rule)},
		types.Pair{Key: "namespace", Value: types.String(o.Namespace)},
		types.Pair{Key: "tags", Value: types.ScanValue{Kind: types.KindSequence, Seq: tags}},
		types.Pair{Key: "meta", Value: types.ScanValue{Kind: types.KindMapping, Pairs: meta}},
		types.Pair{Key: "matches", Value: types.Bool(o.Matches)},
		types.Pair{Key: "strings", Value: types.ScanValue{Kind: types.KindSequence, Seq: strs}},
	)
}

func metaValue(v any) types.ScanValue {
	switch x := v.(type) {
	case string:
		return types.String(x)
	case int64:
		return types.Int(x)
	case bool:
		return types.Bool(x)
	default:
		return types.Unknown(x)
	}
}
