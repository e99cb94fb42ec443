package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"lab-dashboard/internal/view"
)

var palette = []string{"#2563eb", "#16a34a", "#f59e0b", "#dc2626", "#7c3aed", "#0891b2", "#db2777", "#65a30d"}

func maxValue(data []view.Datum) float64 {
	var m float64
	for _, d := range data {
		if d.Value > m {
			m = d.Value
		}
	}
	return m
}

// BarChart renders horizontal bars scaled to the largest value.
func BarChart(data []view.Datum) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(data) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No data.</p>`)
			return err
		}
		peak := maxValue(data)
		var b strings.Builder
		b.WriteString(`<div class="chart chart-bar">`)
		for i, d := range data {
			width := 0.0
			if peak > 0 {
				width = d.Value / peak * 100
			}
			fmt.Fprintf(&b,
				`<div class="bar-row"><span class="bar-label">%s</span><span class="bar" style="width:%.1f%%;background:%s"></span><span class="bar-value">%s</span></div>`,
				esc(d.Label), width, palette[i%len(palette)], esc(d.Display))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// PieChart renders a conic-gradient pie with a legend.
func PieChart(data []view.Datum) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var total float64
		for _, d := range data {
			total += d.Value
		}
		if total <= 0 {
			_, err := io.WriteString(w, `<p class="empty">No data.</p>`)
			return err
		}
		var stops []string
		var legend strings.Builder
		var at float64
		for i, d := range data {
			color := palette[i%len(palette)]
			next := at + d.Value/total*100
			stops = append(stops, fmt.Sprintf("%s %.1f%% %.1f%%", color, at, next))
			at = next
			fmt.Fprintf(&legend, `<li><span class="swatch" style="background:%s"></span>%s <strong>%s</strong></li>`,
				color, esc(d.Label), esc(d.Display))
		}
		_, err := fmt.Fprintf(w,
			`<div class="chart chart-pie"><div class="pie" style="background:conic-gradient(%s)"></div><ul class="legend">%s</ul></div>`,
			strings.Join(stops, ","), legend.String())
		return err
	})
}

// LineChart renders an SVG polyline across evenly spaced points.
func LineChart(data []view.Datum) templ.Component {
	const width, height, pad = 320.0, 120.0, 10.0
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(data) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No data.</p>`)
			return err
		}
		peak := maxValue(data)
		step := 0.0
		if len(data) > 1 {
			step = (width - 2*pad) / float64(len(data)-1)
		}
		var points []string
		var labels strings.Builder
		for i, d := range data {
			x := pad + float64(i)*step
			y := height - pad
			if peak > 0 {
				y = height - pad - d.Value/peak*(height-2*pad)
			}
			points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
			fmt.Fprintf(&labels, `<li>%s <strong>%s</strong></li>`, esc(d.Label), esc(d.Display))
		}
		_, err := fmt.Fprintf(w,
			`<div class="chart chart-line"><svg viewBox="0 0 %.0f %.0f" preserveAspectRatio="none"><polyline fill="none" stroke="%s" stroke-width="2" points="%s"/></svg><ul class="legend">%s</ul></div>`,
			width, height, palette[0], strings.Join(points, " "), labels.String())
		return err
	})
}
