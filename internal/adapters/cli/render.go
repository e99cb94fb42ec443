package cli

import (
	"strings"

	"lab-dashboard/internal/app"
	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
)

func header(b *strings.Builder, h view.Header, st Styles) {
	if len(h.Breadcrumbs) > 0 {
		crumbs := make([]string, len(h.Breadcrumbs))
		for i, c := range h.Breadcrumbs {
			crumbs[i] = c.Label
		}
		b.WriteString(st.Muted(strings.Join(crumbs, " / ")) + "\n")
	}
	b.WriteString(st.Title(h.Title))
	if h.Badge != nil {
		b.WriteString(" " + st.Badge(*h.Badge))
	}
	b.WriteString("\n")
	if h.Subtitle != "" {
		b.WriteString(st.Muted(h.Subtitle) + "\n")
	}
	b.WriteString("\n")
}

// DashboardText renders a dashboard result with the text registry reg.
func DashboardText[K ~string, W view.Variant[K]](reg *view.Registry[K, W, string], res *app.DashboardResult[W], st Styles) string {
	var b strings.Builder
	header(&b, res.Config.Header, st)
	for _, s := range view.DispatchAll(reg, res.Config.Global) {
		b.WriteString(s + "\n")
	}
	tabs := make([]string, len(res.Config.Tabs))
	for i, t := range res.Config.Tabs {
		if t.ID == res.Tab.ID {
			tabs[i] = st.Title("[" + t.Label + "]")
		} else {
			tabs[i] = t.Label
		}
	}
	b.WriteString("Tabs: " + strings.Join(tabs, "  ") + "\n\n")
	for _, region := range view.RenderRegions(reg, res.Regions) {
		if len(region.Items) == 0 {
			continue
		}
		b.WriteString(st.Muted("== "+region.Name+" ==") + "\n\n")
		for _, s := range region.Items {
			b.WriteString(s + "\n")
		}
	}
	return b.String()
}

// DetailText renders a Ready detail page with the text registry reg.
func DetailText[K ~string, S view.Variant[K]](reg *view.Registry[K, S, string], cfg view.DetailConfig[S], st Styles) string {
	var b strings.Builder
	header(&b, cfg.Header, st)
	kpis := make([]view.Field, len(cfg.KPIs))
	for i, k := range cfg.KPIs {
		v := k.Value
		if k.Hint != "" {
			v += " (" + k.Hint + ")"
		}
		kpis[i] = view.Field{Label: k.Label, Value: v}
	}
	b.WriteString(ui.TextFields(kpis) + "\n")
	for _, s := range view.DispatchAll(reg, cfg.Main) {
		b.WriteString(s + "\n")
	}
	if len(cfg.Sidebar) > 0 {
		b.WriteString(st.Muted("== sidebar ==") + "\n\n")
		for _, s := range view.DispatchAll(reg, cfg.Sidebar) {
			b.WriteString(s + "\n")
		}
	}
	return b.String()
}

// ListingText renders a listing as a table.
func ListingText(res *app.ListingResult, st Styles) string {
	rows := make([][]string, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = []string{r.ID, r.Title, r.Subtitle, st.Badge(r.Status)}
	}
	return st.Title(res.Entity.Plural()) + "\n\n" + ui.TextTable([]string{"ID", "NAME", "DETAILS", "STATUS"}, rows)
}
