package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rulegaze/rulegaze/internal/styletext"
)

const fallbackWidth = 80

// Console renders styled text trees to a writer with a fixed width.
type Console struct {
	w     io.Writer
	reg   Registry
	width int
}

// NewConsole builds a console. A zero width auto-detects the terminal
// size, falling back to 80 columns.
func NewConsole(w io.Writer, reg Registry, width int) *Console {
	if width <= 0 {
		width = DetectWidth()
	}
	return &Console{w: w, reg: reg, width: width}
}

// DetectWidth reads the terminal width of stdout.
func DetectWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// Width is the display width layout decisions should use.
func (c *Console) Width() int {
	return c.width
}

// Writer exposes the underlying writer for table renderers.
func (c *Console) Writer() io.Writer {
	return c.w
}

// Resolve flattens a text tree to a string, styling each span through
// the registry. Tags without a registered style render plain.
func (c *Console) Resolve(t styletext.Text) string {
	var b strings.Builder
	for _, span := range t.Spans() {
		if style, ok := c.reg[span.Tag]; ok {
			b.WriteString(style.Render(span.Content))
		} else {
			b.WriteString(span.Content)
		}
	}
	return b.String()
}

// Print writes the resolved text followed by a newline.
func (c *Console) Print(t styletext.Text) {
	fmt.Fprintln(c.w, c.Resolve(t))
}

// PrintPanel writes the text inside a rounded border box.
func (c *Console) PrintPanel(t styletext.Text) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	fmt.Fprintln(c.w, box.Render(c.Resolve(t)))
}

// PrintPadded writes the text indented by left spaces on every line.
func (c *Console) PrintPadded(t styletext.Text, left int) {
	pad := strings.Repeat(" ", left)
	resolved := c.Resolve(t)
	for _, line := range strings.Split(resolved, "\n") {
		fmt.Fprintln(c.w, pad+line)
	}
}

// Line writes n blank lines.
func (c *Console) Line(n int) {
	for i := 0; i < n; i++ {
		fmt.Fprintln(c.w)
	}
}
