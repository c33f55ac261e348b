// Package display resolves semantic style tags to terminal styling and
// owns every write of styled output. Nothing outside this package emits
// escape sequences.
package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rulegaze/rulegaze/internal/styletext"
)

// Registry maps style tags to concrete visual styles. It is passed in
// explicitly; there is no process-wide theme state.
type Registry map[styletext.StyleTag]lipgloss.Style

// DefaultRegistry is the stock color scheme.
func DefaultRegistry() Registry {
	return Registry{
		styletext.TagURL:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		styletext.TagNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		styletext.TagHex:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		styletext.TagDate:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		styletext.TagMatchVar: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		styletext.TagString:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		styletext.TagBytes:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		styletext.TagKey:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		styletext.TagBracket:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		styletext.TagTrue:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		styletext.TagFalse:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),

		styletext.TagSubject:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		styletext.TagRuleSet:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		styletext.TagAlert:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		styletext.TagAddress:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		styletext.TagDim:           lipgloss.NewStyle().Faint(true),
		styletext.TagDecodeHeading: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
}

// NoColorRegistry resolves every tag to plain text.
func NoColorRegistry() Registry {
	return Registry{}
}
