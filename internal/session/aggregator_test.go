package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulegaze/rulegaze/internal/styletext"
	"github.com/rulegaze/rulegaze/internal/yarex"
)

func outcome(rule string, matches bool) yarex.Outcome {
	o := yarex.Outcome{Rule: rule, Namespace: "default", Matches: matches}
	if matches {
		o.Strings = []yarex.StringMatch{{Offset: 0, Identifier: "$x", Data: []byte("hit")}}
	}
	return o
}

func TestAggregatorPartition(t *testing.T) {
	agg := NewAggregator(styletext.Plain("subject scanned with <rules>"))

	for _, o := range []yarex.Outcome{
		outcome("zeta", true),
		outcome("beta", false),
		outcome("alpha", true),
		outcome("gamma", false),
	} {
		require.Equal(t, yarex.ScanContinue, agg.Observe(o))
	}

	summary := agg.Summary()
	require.Len(t, summary.Matched, 2)
	require.Len(t, summary.MatchedOutcomes, 2)
	require.Len(t, summary.Unmatched, 2)

	// Matches keep arrival order; unmatched identifiers come out sorted.
	assert.Equal(t, "zeta", summary.Matched[0].Rule)
	assert.Equal(t, "alpha", summary.Matched[1].Rule)
	assert.Equal(t, []string{"beta", "gamma"}, summary.Unmatched)

	// The Nth matched outcome belongs to the Nth matched record.
	assert.Equal(t, summary.Matched[0].Rule, summary.MatchedOutcomes[0].Rule)
	assert.Equal(t, summary.Matched[1].Rule, summary.MatchedOutcomes[1].Rule)
}

func TestAggregatorDoesNotDeduplicate(t *testing.T) {
	agg := NewAggregator(styletext.Plain("hdr"))
	agg.Observe(outcome("dup", false))
	agg.Observe(outcome("dup", false))

	summary := agg.Summary()
	assert.Equal(t, []string{"dup", "dup"}, summary.Unmatched)
}

func TestMatchLabelPhrasing(t *testing.T) {
	agg := NewAggregator(styletext.Plain("payload scanned with <r.rgz>"))
	agg.Observe(outcome("evil_url", true))

	summary := agg.Summary()
	require.Len(t, summary.Matched, 1)
	assert.Equal(t,
		"payload scanned with <r.rgz> matched rule: 'evil_url'!",
		summary.Matched[0].Label.String())
}

func TestFromOutcomeShape(t *testing.T) {
	o := yarex.Outcome{
		Rule:      "shape",
		Namespace: "default",
		Tags:      []string{"net"},
		Meta: []yarex.MetaPair{
			{Key: "author", Value: "probe"},
			{Key: "severity", Value: int64(2)},
			{Key: "active", Value: true},
		},
		Matches: true,
		Strings: []yarex.StringMatch{
			{Offset: 7, Identifier: "$u", Data: []byte("http://x")},
		},
	}
	v := FromOutcome(o)

	keys := make([]string, len(v.Pairs))
	for i, p := range v.Pairs {
		keys[i] = p.Key
	}
	assert.Equal(t, []string{"rule", "namespace", "tags", "meta", "matches", "strings"}, keys)

	strs := v.Pairs[5].Value
	require.Len(t, strs.Seq, 1)
	triple := strs.Seq[0]
	require.Len(t, triple.Seq, 3)
	assert.Equal(t, "7", triple.Seq[0].NumString())
	assert.Equal(t, "$u", triple.Seq[1].Str)
	assert.Equal(t, []byte("http://x"), triple.Seq[2].Bytes)

	meta := v.Pairs[3].Value
	require.Len(t, meta.Pairs, 3)
	assert.Equal(t, "probe", meta.Pairs[0].Value.Str)
	assert.Equal(t, "2", meta.Pairs[1].Value.NumString())
	assert.True(t, meta.Pairs[2].Value.Bool)
}
