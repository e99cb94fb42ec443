package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"lab-dashboard/internal/view"
)

// PageHeader renders breadcrumbs, title, subtitle and badge.
func PageHeader(h view.Header) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<header class="page-header">`)
		if len(h.Breadcrumbs) > 0 {
			b.WriteString(`<ol class="breadcrumbs">`)
			for _, c := range h.Breadcrumbs {
				if c.Href != "" {
					fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, esc(c.Href), esc(c.Label))
				} else {
					fmt.Fprintf(&b, `<li>%s</li>`, esc(c.Label))
				}
			}
			b.WriteString(`</ol>`)
		}
		fmt.Fprintf(&b, `<h1><span class="icon icon-%s"></span>%s`, esc(h.Icon), esc(h.Title))
		if h.Badge != nil {
			fmt.Fprintf(&b, ` <span class="badge badge-%s">%s</span>`, esc(string(toneOr(h.Badge.Tone))), esc(h.Badge.Text))
		}
		b.WriteString(`</h1>`)
		if h.Subtitle != "" {
			fmt.Fprintf(&b, `<p class="subtitle">%s</p>`, esc(h.Subtitle))
		}
		b.WriteString(`</header>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// KPIStrip renders a row of headline figures.
func KPIStrip(kpis []view.KPI) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(kpis) == 0 {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<div class="kpis">`)
		for _, k := range kpis {
			fmt.Fprintf(&b, `<div class="kpi kpi-%s"><span class="kpi-label">%s</span><span class="kpi-value">%s</span>`,
				esc(string(toneOr(k.Tone))), esc(k.Label), esc(k.Value))
			if k.Hint != "" {
				fmt.Fprintf(&b, `<span class="kpi-hint">%s</span>`, esc(k.Hint))
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Actions renders the page's action buttons.
func Actions(actions []view.Action) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(actions) == 0 {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<div class="actions">`)
		for _, a := range actions {
			class := "button"
			if a.Primary {
				class += " button-primary"
			}
			fmt.Fprintf(&b, `<a class="%s" href="%s">%s</a>`, class, esc(a.Href), esc(a.Label))
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Regions renders each dispatched region in its own container, in order.
// Empty regions are omitted.
func Regions(regions []view.Rendered[templ.Component]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="regions regions-%d">`, len(regions)); err != nil {
			return err
		}
		for _, r := range regions {
			if len(r.Items) == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, `<div class="region region-%s" data-region="%s">`, esc(r.Name), esc(r.Name)); err != nil {
				return err
			}
			if err := Stack(r.Items...).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// TabLink is one entry of a dashboard's tab bar.
type TabLink struct {
	Label  string
	Href   string
	Active bool
}

// Tabs renders a tab bar.
func Tabs(tabs []TabLink) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<nav class="tabs">`)
		for _, t := range tabs {
			class := "tab"
			if t.Active {
				class += " tab-active"
			}
			fmt.Fprintf(&b, `<a class="%s" href="%s">%s</a>`, class, esc(t.Href), esc(t.Label))
		}
		b.WriteString(`</nav>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
