package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rulegaze/rulegaze/internal/config"
	"github.com/rulegaze/rulegaze/internal/session"
	"github.com/rulegaze/rulegaze/internal/styletext"
	"github.com/rulegaze/rulegaze/internal/types"
	"github.com/rulegaze/rulegaze/internal/yarex"
)

func sampleSummary() session.Summary {
	matched := []types.MatchRecord{
		{Rule: "evil_url", Value: types.Mapping(), Label: styletext.Plain("hit: evil_url")},
		{Rule: "plain_number", Value: types.Mapping(), Label: styletext.Plain("hit: plain_number")},
	}
	outcomes := []yarex.Outcome{
		{Rule: "evil_url", Matches: true, Strings: []yarex.StringMatch{
			{Offset: 3, Identifier: "$u", Data: []byte("http://x")},
		}},
		{Rule: "plain_number", Matches: true, Strings: []yarex.StringMatch{
			{Offset: 0, Identifier: "$n", Data: []byte("42")},
		}},
	}
	return session.Summary{Matched: matched, MatchedOutcomes: outcomes, Unmatched: []string{"quiet"}}
}

func noColorSettings() config.Settings {
	s := config.Defaults()
	s.NoColor = true
	s.Width = 80
	return s
}

func TestNewModelShowsAllMatches(t *testing.T) {
	m := NewModel(sampleSummary(), []byte("...http://x"), noColorSettings())
	if len(m.visible) != 2 {
		t.Fatalf("expected 2 visible rows, got %d", len(m.visible))
	}
	rows := m.table.Rows()
	if rows[0][0] != "evil_url" || rows[1][0] != "plain_number" {
		t.Fatalf("rows: %v", rows)
	}
	if rows[0][1] != "1" || rows[0][2] != "3" {
		t.Fatalf("hits/offset columns: %v", rows[0])
	}
}

func TestApplyFilter(t *testing.T) {
	m := NewModel(sampleSummary(), []byte("...http://x"), noColorSettings())
	m.applyFilter("URL")
	if len(m.visible) != 1 || m.summary.Matched[m.visible[0]].Rule != "evil_url" {
		t.Fatalf("filter should be a case-insensitive substring match: %v", m.visible)
	}
	m.applyFilter("")
	if len(m.visible) != 2 {
		t.Fatalf("clearing the filter should restore all rows: %v", m.visible)
	}
	m.applyFilter("no such rule")
	if len(m.visible) != 0 {
		t.Fatalf("unmatched filter should empty the table: %v", m.visible)
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := NewModel(sampleSummary(), nil, noColorSettings())
	if m.View() != "Loading..." {
		t.Fatalf("View before sizing = %q", m.View())
	}
}

func TestWindowSizeReadiesModel(t *testing.T) {
	m := NewModel(sampleSummary(), []byte("...http://x"), noColorSettings())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)
	if !m.ready {
		t.Fatalf("model should be ready after the first WindowSizeMsg")
	}
	view := m.View()
	if !strings.Contains(view, "rulegaze: 2 matched, 1 unmatched") {
		t.Fatalf("title missing:\n%s", view)
	}
	if !strings.Contains(view, "evil_url") {
		t.Fatalf("table content missing:\n%s", view)
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(sampleSummary(), nil, noColorSettings())
	for _, key := range []string{"q", "ctrl+c"} {
		var msg tea.KeyMsg
		if key == "q" {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s should quit", key)
		}
	}
}

func TestSlashEntersFilterMode(t *testing.T) {
	m := NewModel(sampleSummary(), nil, noColorSettings())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = updated.(Model)
	if !m.filtering {
		t.Fatalf("slash should enter filter mode")
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.filtering {
		t.Fatalf("esc should leave filter mode")
	}
	if len(m.visible) != 2 {
		t.Fatalf("esc should clear the filter: %v", m.visible)
	}
}
