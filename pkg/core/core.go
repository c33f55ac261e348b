package core

import (
	"io"

	"github.com/rulegaze/rulegaze/internal/config"
	"github.com/rulegaze/rulegaze/internal/display"
	"github.com/rulegaze/rulegaze/internal/session"
	"github.com/rulegaze/rulegaze/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable
// path; they can become decoupled structs later without breaking callers.
type (
	Settings    = config.Settings
	Session     = session.Session
	Scannable   = session.Scannable
	Summary     = session.Summary
	MatchRecord = types.MatchRecord
	ScanValue   = types.ScanValue
)

// Defaults returns the stock scan settings.
func Defaults() Settings { return config.Defaults() }

// Bytes wraps an in-memory scan subject. The label is mandatory.
func Bytes(data []byte, label string) Scannable { return session.Bytes(data, label) }

// File wraps an on-disk scan subject.
func File(path string) Scannable { return session.File(path) }

// Scan is the one-call entrypoint for other programs: compile the rule
// source, scan the subject, and return the partitioned summary without
// printing anything.
func Scan(ruleSource, rulesLabel string, subject Scannable, settings Settings) (Summary, error) {
	console := display.NewConsole(io.Discard, display.NoColorRegistry(), settings.Width)
	s, err := session.FromSource(ruleSource, rulesLabel, subject, settings, console)
	if err != nil {
		return Summary{}, err
	}
	return s.Scan(), nil
}
