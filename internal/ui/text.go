package ui

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"lab-dashboard/internal/view"
)

// Plain-text counterparts of the HTML primitives, used by the text renderers
// behind labctl and the REPL.

const barWidth = 30

// TextSection puts body under an underlined title.
func TextSection(title, body string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len([]rune(title))))
	b.WriteByte('\n')
	b.WriteString(strings.TrimRight(body, "\n"))
	b.WriteByte('\n')
	return b.String()
}

// TextTable aligns rows under a header row.
func TextTable(columns []string, rows [][]string) string {
	if len(rows) == 0 {
		return "No records.\n"
	}
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
	return b.String()
}

// TextFields aligns label/value pairs.
func TextFields(fields []view.Field) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Label, f.Value)
	}
	_ = tw.Flush()
	return b.String()
}

// TextList renders one dash-prefixed line per item.
func TextList(items []string) string {
	if len(items) == 0 {
		return "None.\n"
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString("- ")
		b.WriteString(it)
		b.WriteByte('\n')
	}
	return b.String()
}

// TextBars renders data as horizontal bars scaled to the largest value.
func TextBars(data []view.Datum) string {
	if len(data) == 0 {
		return "No data.\n"
	}
	top := maxValue(data)
	width := 0
	for _, d := range data {
		width = max(width, len([]rune(d.Label)))
	}
	var b strings.Builder
	for _, d := range data {
		n := 0
		if top > 0 {
			n = int(math.Round(d.Value / top * barWidth))
		}
		fmt.Fprintf(&b, "%-*s  %s %s\n", width, d.Label, strings.Repeat("#", n), d.Display)
	}
	return b.String()
}

// TextProgress renders a ten-cell progress gauge.
func TextProgress(pct int, label string) string {
	pct = min(max(pct, 0), 100)
	filled := pct / 10
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", 10-filled) + "] " + label
}

// TextBadge renders a status label in brackets.
func TextBadge(b view.Badge) string {
	return "[" + b.Text + "]"
}
