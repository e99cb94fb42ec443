package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"lab-dashboard/internal/view"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var toneColors = map[view.Tone]lipgloss.Color{
	view.ToneGood:    lipgloss.Color("#15803d"),
	view.ToneWarn:    lipgloss.Color("#b45309"),
	view.ToneBad:     lipgloss.Color("#b91c1c"),
	view.ToneInfo:    lipgloss.Color("#0369a1"),
	view.ToneNeutral: lipgloss.Color("#64748b"),
}

// Styles decorates text output. The zero value prints plain text.
type Styles struct {
	color bool
	title lipgloss.Style
	muted lipgloss.Style
}

// NewStyles returns styles that colour output when color is true.
func NewStyles(color bool) Styles {
	return Styles{
		color: color,
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563eb")),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")),
	}
}

func (s Styles) Title(t string) string {
	if !s.color {
		return t
	}
	return s.title.Render(t)
}

func (s Styles) Muted(t string) string {
	if !s.color {
		return t
	}
	return s.muted.Render(t)
}

// Badge renders b as "[Text]", coloured by tone.
func (s Styles) Badge(b view.Badge) string {
	text := "[" + b.Text + "]"
	if !s.color {
		return text
	}
	c, ok := toneColors[b.Tone]
	if !ok {
		c = toneColors[view.ToneNeutral]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(text)
}
