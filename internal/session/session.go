// Package session ties one scan together: it normalizes the alternate
// rule sources into a compiled ruleset plus label, runs the engine once,
// aggregates per-rule outcomes, and drives rendering of the results.
package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rulegaze/rulegaze/internal/bytesmatch"
	"github.com/rulegaze/rulegaze/internal/config"
	"github.com/rulegaze/rulegaze/internal/decode"
	"github.com/rulegaze/rulegaze/internal/display"
	"github.com/rulegaze/rulegaze/internal/loader"
	"github.com/rulegaze/rulegaze/internal/logging"
	"github.com/rulegaze/rulegaze/internal/render"
	"github.com/rulegaze/rulegaze/internal/styletext"
	"github.com/rulegaze/rulegaze/internal/yarex"
)

var log = logging.GetLogger("session")

var (
	// ErrMissingBytesLabel rejects raw-bytes subjects without a label.
	ErrMissingBytesLabel = errors.New("must provide a bytes label when scanning raw bytes")

	// ErrNoRuleFiles rejects an empty rule file list.
	ErrNoRuleFiles = errors.New("at least one rule file is required")
)

// Scannable is the scan subject: either raw bytes with an explicit
// label, or a file path whose base name becomes the default label.
type Scannable struct {
	data  []byte
	label string
	path  string
}

// Bytes wraps an in-memory subject. The label is mandatory and checked
// when the session is built.
func Bytes(data []byte, label string) Scannable {
	return Scannable{data: data, label: label}
}

// File wraps an on-disk subject.
func File(path string) Scannable {
	return Scannable{path: path}
}

func (sc Scannable) resolve() ([]byte, string, error) {
	if sc.path != "" {
		data, err := loader.LoadBytes(sc.path)
		if err != nil {
			return nil, "", err
		}
		label := sc.label
		if label == "" {
			label = filepath.Base(sc.path)
		}
		return data, label, nil
	}
	if sc.label == "" {
		return nil, "", ErrMissingBytesLabel
	}
	return sc.data, sc.label, nil
}

// Session owns one end-to-end scan: ruleset, subject bytes, settings,
// and the two outcome record lists. Sessions share nothing mutable, so
// separate sessions are safe to run concurrently; only a compiled
// ruleset may be deliberately reused across them.
type Session struct {
	rules      *yarex.Rules
	rulesLabel string
	data       []byte
	bytesLabel string
	settings   config.Settings
	console    *display.Console
	agg        *Aggregator
}

// New builds a session from an already-compiled ruleset.
func New(rules *yarex.Rules, rulesLabel string, subject Scannable, settings config.Settings, console *display.Console) (*Session, error) {
	data, bytesLabel, err := subject.resolve()
	if err != nil {
		return nil, err
	}
	s := &Session{
		rules:      rules,
		rulesLabel: rulesLabel,
		data:       data,
		bytesLabel: bytesLabel,
		settings:   settings,
		console:    console,
	}
	s.agg = NewAggregator(s.Text())
	return s, nil
}

// FromSource compiles rule source text and builds a session.
// Compilation failures abort the session before any scan.
func FromSource(source, rulesLabel string, subject Scannable, settings config.Settings, console *display.Console) (*Session, error) {
	rules, err := yarex.Compile(source)
	if err != nil {
		return nil, err
	}
	return New(rules, rulesLabel, subject, settings, console)
}

// ForRulesFiles loads one rule source per file, newline-joins them, and
// labels the set with the comma-joined base names.
func ForRulesFiles(files []string, subject Scannable, settings config.Settings, console *display.Console) (*Session, error) {
	if len(files) == 0 {
		return nil, ErrNoRuleFiles
	}
	sources := make([]string, len(files))
	for i, f := range files {
		src, err := loader.LoadText(f)
		if err != nil {
			return nil, err
		}
		sources[i] = src
	}
	label := loader.CommaJoin(loader.BaseNames(files))
	return FromSource(strings.Join(sources, "\n"), label, subject, settings, console)
}

// ForRulesDir loads every rule file in dir.
func ForRulesDir(dir string, subject Scannable, settings config.Settings, console *display.Console) (*Session, error) {
	files, err := loader.RuleFilesInDir(dir)
	if err != nil {
		return nil, err
	}
	return ForRulesFiles(files, subject, settings, console)
}

// ForPatterns synthesizes one minimal rule per ad-hoc pattern and labels
// the set with the comma-joined pattern list.
func ForPatterns(patterns []string, subject Scannable, settings config.Settings, console *display.Console) (*Session, error) {
	if len(patterns) == 0 {
		return nil, errors.New("at least one pattern is required")
	}
	source := yarex.RulesForPatterns(patterns)
	return FromSource(source, loader.CommaJoin(patterns), subject, settings, console)
}

// Text is the session header: subject label plus ruleset label.
func (s *Session) Text() styletext.Text {
	t := styletext.Tagged(s.bytesLabel, styletext.TagSubject)
	t = t.AppendPlain(" scanned with <")
	t = t.AppendTagged(s.rulesLabel, styletext.TagRuleSet)
	return t.AppendPlain(">")
}

// RulesLabel returns the human-readable ruleset description.
func (s *Session) RulesLabel() string { return s.rulesLabel }

// BytesLabel returns the scan subject description.
func (s *Session) BytesLabel() string { return s.bytesLabel }

// Data returns the scanned bytes.
func (s *Session) Data() []byte { return s.data }

// Scan drives exactly one pass of the engine, feeding the aggregator
// through the callback, and returns the partitioned summary. It prints
// nothing; Run layers the styled report on top.
func (s *Session) Scan() Summary {
	log.Debug().
		Int("bytes", len(s.data)).
		Int("rules", s.rules.Count()).
		Msg("starting scan")
	s.rules.Scan(s.data, s.agg.Observe)
	return s.agg.Summary()
}

// Run scans and prints the full styled report: one panel pair per match
// in arrival order, decode attempts for each matched span, then the
// unmatched summary.
func (s *Session) Run() Summary {
	summary := s.Scan()
	renderer := render.New(s.console.Width())

	for i, rec := range summary.Matched {
		s.console.Line(1)
		s.console.PrintPanel(rec.Label)
		s.console.PrintPanel(renderer.Render(rec.Value, 0))

		opts := decode.Options{
			MinLength: s.settings.MinDecodeLength,
			MaxLength: s.settings.MaxDecodeLength,
			Suppress:  s.settings.SuppressDecodes,
		}
		for _, m := range bytesmatch.ForOutcome(s.data, summary.MatchedOutcomes[i], s.settings.SurroundingBytes) {
			decode.New(m, opts).WriteTable(s.console.Writer())
		}
	}

	s.printNonMatchSummary(summary)
	return summary
}

// printNonMatchSummary reports the rules that never hit. The phrasing
// differs depending on whether anything matched at all.
func (s *Session) printNonMatchSummary(summary Summary) {
	if len(summary.Unmatched) == 0 {
		return
	}
	n := len(summary.Unmatched)

	if len(summary.Matched) == 0 {
		t := s.Text().AppendTagged(
			fmt.Sprintf(" did not match any of the %d rules", n), styletext.TagDim)
		s.console.Line(1)
		s.console.Print(t)
		return
	}

	t := s.Text().AppendTagged(
		fmt.Sprintf(" did not match the other %d rules: ", n), styletext.TagAddress)
	s.console.Line(1)
	s.console.Print(t)

	ids := make([]styletext.Text, len(summary.Unmatched))
	for i, id := range summary.Unmatched {
		ids[i] = styletext.Tagged(id, styletext.TagAddress)
	}
	s.console.PrintPadded(styletext.Join(styletext.Plain(", "), ids), 4)
}
