package session

import (
	"sort"

	"github.com/rulegaze/rulegaze/internal/styletext"
	"github.com/rulegaze/rulegaze/internal/types"
	"github.com/rulegaze/rulegaze/internal/yarex"
)

// Aggregator partitions rule evaluation outcomes into matched and
// unmatched records. It is owned by exactly one session and fed by the
// engine's synchronous callback, so no locking is needed.
type Aggregator struct {
	label     styletext.Text
	matched   []types.MatchRecord
	outcomes  []yarex.Outcome
	unmatched []types.NonMatchRecord
}

func NewAggregator(label styletext.Text) *Aggregator {
	return &Aggregator{label: label}
}

// Observe records one outcome. Arrival order is preserved for matches.
// The engine invokes the callback once per rule; the aggregator relies
// on that contract and does not deduplicate identifiers itself.
func (a *Aggregator) Observe(o yarex.Outcome) yarex.CallbackResult {
	if o.Matches {
		a.matched = append(a.matched, types.MatchRecord{
			Rule:  o.Rule,
			Value: FromOutcome(o),
			Label: matchLabel(a.label, o.Rule),
		})
		a.outcomes = append(a.outcomes, o)
	} else {
		a.unmatched = append(a.unmatched, types.NonMatchRecord{Rule: o.Rule})
	}
	return yarex.ScanContinue
}

// Summary is the post-scan partition: matched records in arrival order,
// unmatched rule identifiers sorted for display.
type Summary struct {
	Matched         []types.MatchRecord
	MatchedOutcomes []yarex.Outcome
	Unmatched       []string
}

func (a *Aggregator) Summary() Summary {
	unmatched := make([]string, len(a.unmatched))
	for i, nm := range a.unmatched {
		unmatched[i] = nm.Rule
	}
	sort.Strings(unmatched)
	return Summary{
		Matched:         a.matched,
		MatchedOutcomes: a.outcomes,
		Unmatched:       unmatched,
	}
}

// matchLabel decorates the session header with the matched rule name.
func matchLabel(base styletext.Text, rule string) styletext.Text {
	t := base.AppendPlain(" matched rule: '")
	t = t.AppendTagged(rule, styletext.TagAlert)
	return t.AppendPlain("'!")
}
