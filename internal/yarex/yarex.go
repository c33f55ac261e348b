// Package yarex compiles a small YARA-flavored rule language onto Go's
// regexp engine and scans byte buffers with it. The scan protocol is
// deliberately callback-shaped: one synchronous callback invocation per
// compiled rule, whether or not the rule matched.
package yarex

import "regexp"

// CallbackResult tells Scan whether to keep iterating rules.
type CallbackResult int

const (
	ScanContinue CallbackResult = iota
	ScanAbort
)

// StringMatch is one occurrence of one string pattern within the data.
type StringMatch struct {
	Offset     int64
	Identifier string
	Data       []byte
}

// MetaPair is one rule metadata entry, in declaration order.
type MetaPair struct {
	Key   string
	Value any
}

// Outcome is handed to the scan callback once per rule. Matches reports
// whether the rule's condition held; Strings lists every pattern hit.
type Outcome struct {
	Rule      string
	Namespace string
	Tags      []string
	Meta      []MetaPair
	Matches   bool
	Strings   []StringMatch
}

// Callback receives one Outcome per rule during a scan.
type Callback func(Outcome) CallbackResult

type conditionKind int

const (
	condAnyOfThem conditionKind = iota
	condAllOfThem
)

type pattern struct {
	identifier string
	re         *regexp.Regexp
}

type rule struct {
	name      string
	tags      []string
	meta      []MetaPair
	patterns  []pattern
	condition conditionKind
}

// Rules is a compiled, immutable ruleset. A single Rules value may be
// shared across concurrent scans.
type Rules struct {
	rules []rule
}

// Count returns the number of compiled rules.
func (r *Rules) Count() int {
	return len(r.rules)
}

// RuleNames returns the rule identifiers in declaration order.
func (r *Rules) RuleNames() []string {
	names := make([]string, len(r.rules))
	for i, ru := range r.rules {
		names[i] = ru.name
	}
	return names
}

// Scan evaluates every rule against data and invokes cb exactly once per
// rule, in declaration order, on the calling goroutine. A ScanAbort
// return stops the iteration early.
func (r *Rules) Scan(data []byte, cb Callback) {
	for _, ru := range r.rules {
		outcome := Outcome{
			Rule:      ru.name,
			Namespace: "default",
			Tags:      ru.tags,
			Meta:      ru.meta,
		}

		hits := 0
		for _, p := range ru.patterns {
			locs := p.re.FindAllIndex(data, -1)
			if len(locs) > 0 {
				hits++
			}
			for _, loc := range locs {
				outcome.Strings = append(outcome.Strings, StringMatch{
					Offset:     int64(loc[0]),
					Identifier: p.identifier,
					Data:       data[loc[0]:loc[1]],
				})
			}
		}

		switch ru.condition {
		case condAllOfThem:
			outcome.Matches = hits == len(ru.patterns) && hits > 0
		default:
			outcome.Matches = hits > 0
		}
		if !outcome.Matches {
			outcome.Strings = nil
		}

		if cb(outcome) == ScanAbort {
			return
		}
	}
}
