package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rulegaze/rulegaze/internal/config"
	"github.com/rulegaze/rulegaze/internal/session"
)

// Run opens the match browser over a finished scan.
func Run(summary session.Summary, data []byte, settings config.Settings) error {
	m := NewModel(summary, data, settings)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
