package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"lab-dashboard/internal/view"
)

// Cell is one table cell. Href turns it into a link; Tone renders it as a
// badge.
type Cell struct {
	Text string
	Href string
	Tone view.Tone
}

// Plain returns cells holding the given texts.
func Plain(texts ...string) []Cell {
	cells := make([]Cell, len(texts))
	for i, t := range texts {
		cells[i] = Cell{Text: t}
	}
	return cells
}

// Table renders a header row and body rows.
func Table(columns []string, rows [][]Cell) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(rows) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No records.</p>`)
			return err
		}
		var b strings.Builder
		b.WriteString(`<table class="table"><thead><tr>`)
		for _, c := range columns {
			fmt.Fprintf(&b, `<th>%s</th>`, esc(c))
		}
		b.WriteString(`</tr></thead><tbody>`)
		for _, row := range rows {
			b.WriteString(`<tr>`)
			for _, c := range row {
				b.WriteString(`<td>`)
				switch {
				case c.Href != "":
					fmt.Fprintf(&b, `<a href="%s">%s</a>`, esc(c.Href), esc(c.Text))
				case c.Tone != "":
					fmt.Fprintf(&b, `<span class="badge badge-%s">%s</span>`, esc(string(c.Tone)), esc(c.Text))
				default:
					b.WriteString(esc(c.Text))
				}
				b.WriteString(`</td>`)
			}
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
