// Package tui is an interactive browser over a finished scan: a table
// of matched rules with a detail pane showing the rendered value tree
// and decode attempts for the selected rule.
package tui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rulegaze/rulegaze/internal/bytesmatch"
	"github.com/rulegaze/rulegaze/internal/config"
	"github.com/rulegaze/rulegaze/internal/decode"
	"github.com/rulegaze/rulegaze/internal/display"
	"github.com/rulegaze/rulegaze/internal/render"
	"github.com/rulegaze/rulegaze/internal/session"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model for the match browser.
type Model struct {
	summary  session.Summary
	data     []byte
	settings config.Settings
	registry display.Registry

	table       table.Model
	viewport    viewport.Model
	searchInput textinput.Model

	// indexes into summary.Matched currently shown, in table row order
	visible []int

	filtering     bool
	statusMessage string
	width         int
	height        int
	ready         bool
}

// NewModel builds the browser over a finished scan summary.
func NewModel(summary session.Summary, data []byte, settings config.Settings) Model {
	columns := []table.Column{
		{Title: "Rule", Width: 30},
		{Title: "Hits", Width: 6},
		{Title: "First Offset", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Filter by rule name..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "

	reg := display.DefaultRegistry()
	if settings.NoColor {
		reg = display.NoColorRegistry()
	}

	m := Model{
		summary:       summary,
		data:          data,
		settings:      settings,
		registry:      reg,
		table:         t,
		searchInput:   ti,
		statusMessage: "q: quit | /: filter | c: copy matched bytes | j/k: navigate",
	}
	m.applyFilter("")
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// applyFilter rebuilds the visible rows from a rule-name substring.
func (m *Model) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	m.visible = m.visible[:0]
	rows := []table.Row{}
	for i, rec := range m.summary.Matched {
		if query != "" && !strings.Contains(strings.ToLower(rec.Rule), query) {
			continue
		}
		o := m.summary.MatchedOutcomes[i]
		offset := "-"
		if len(o.Strings) > 0 {
			offset = strconv.FormatInt(o.Strings[0].Offset, 10)
		}
		rows = append(rows, table.Row{rec.Rule, strconv.Itoa(len(o.Strings)), offset})
		m.visible = append(m.visible, i)
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
	m.updateDetail()
}

// selectedIndex resolves the table cursor to a summary index, or -1.
func (m *Model) selectedIndex() int {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.visible) {
		return -1
	}
	return m.visible[c]
}

// updateDetail re-renders the detail pane for the selected rule.
func (m *Model) updateDetail() {
	idx := m.selectedIndex()
	if idx < 0 {
		m.viewport.SetContent("No matches.")
		return
	}
	rec := m.summary.Matched[idx]
	outcome := m.summary.MatchedOutcomes[idx]

	var buf bytes.Buffer
	console := display.NewConsole(&buf, m.registry, m.detailWidth())
	console.Print(rec.Label)
	console.Line(1)
	renderer := render.New(console.Width())
	console.Print(renderer.Render(rec.Value, 0))

	opts := decode.Options{
		MinLength: m.settings.MinDecodeLength,
		MaxLength: m.settings.MaxDecodeLength,
		Suppress:  m.settings.SuppressDecodes,
	}
	for _, bm := range bytesmatch.ForOutcome(m.data, outcome, m.settings.SurroundingBytes) {
		decode.New(bm, opts).WriteTable(&buf)
	}
	m.viewport.SetContent(buf.String())
	m.viewport.GotoTop()
}

func (m *Model) detailWidth() int {
	if m.width > 4 {
		return m.width - 4
	}
	return 80
}

// copySelection puts the selected rule's first matched bytes on the
// system clipboard.
func (m *Model) copySelection() {
	idx := m.selectedIndex()
	if idx < 0 {
		return
	}
	o := m.summary.MatchedOutcomes[idx]
	if len(o.Strings) == 0 {
		m.statusMessage = "Nothing to copy: rule matched without string hits"
		return
	}
	if err := clipboard.WriteAll(string(o.Strings[0].Data)); err != nil {
		m.statusMessage = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.statusMessage = fmt.Sprintf("Copied %d bytes from %s", len(o.Strings[0].Data), o.Rule)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.searchInput.Blur()
				if msg.String() == "esc" {
					m.searchInput.SetValue("")
					m.applyFilter("")
				}
			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.applyFilter(m.searchInput.Value())
			}
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.searchInput.Focus()
			return m, textinput.Blink
		case "c":
			m.copySelection()
			return m, nil
		default:
			m.table, cmd = m.table.Update(msg)
			m.updateDetail()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := msg.Height - m.table.Height() - 8
		if viewportHeight < 3 {
			viewportHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.ready = true
			m.updateDetail()
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf(
		"rulegaze: %d matched, %d unmatched", len(m.summary.Matched), len(m.summary.Unmatched))))
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString(tableBorderStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(detailBorderStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusMessage))
	return b.String()
}
