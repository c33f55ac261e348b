// Package report serializes a scan summary for machine consumption.
package report

import (
	"encoding/json"
	"io"

	"github.com/rulegaze/rulegaze/internal/session"
	"github.com/rulegaze/rulegaze/internal/types"
)

// Match is one matched rule with its full outcome value.
type Match struct {
	Rule  string          `json:"rule"`
	Value types.ScanValue `json:"value"`
}

// Envelope is the JSON report shape.
type Envelope struct {
	Subject        string   `json:"subject"`
	Rules          string   `json:"rules"`
	MatchedCount   int      `json:"matched_count"`
	UnmatchedCount int      `json:"unmatched_count"`
	Matches        []Match  `json:"matches"`
	Unmatched      []string `json:"unmatched"`
}

// Build assembles the envelope from a finished scan. Matches keep their
// arrival order; unmatched identifiers arrive already sorted.
func Build(subjectLabel, rulesLabel string, summary session.Summary) Envelope {
	matches := make([]Match, len(summary.Matched))
	for i, rec := range summary.Matched {
		matches[i] = Match{Rule: rec.Rule, Value: rec.Value}
	}
	return Envelope{
		Subject:        subjectLabel,
		Rules:          rulesLabel,
		MatchedCount:   len(matches),
		UnmatchedCount: len(summary.Unmatched),
		Matches:        matches,
		Unmatched:      summary.Unmatched,
	}
}

// WriteJSON writes the envelope as indented JSON.
func WriteJSON(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
