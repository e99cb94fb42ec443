package app

import "lab-dashboard/internal/view"

// TabDoc names one dashboard tab.
type TabDoc struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RegionDoc is an arranged region with its variants in wire form.
type RegionDoc struct {
	Name     string        `json:"name"`
	Variants []view.Tagged `json:"variants"`
}

// DashboardDoc is the wire form of a DashboardResult.
type DashboardDoc struct {
	Header  view.Header   `json:"header"`
	Tab     string        `json:"tab"`
	Tabs    []TabDoc      `json:"tabs"`
	Global  []view.Tagged `json:"global"`
	Regions []RegionDoc   `json:"regions"`
}

// DetailDoc is the wire form of a DetailResult. Only Ready pages carry a
// body.
type DetailDoc struct {
	Entity  Entity        `json:"entity"`
	ID      string        `json:"id"`
	Phase   string        `json:"phase"`
	Header  *view.Header  `json:"header,omitempty"`
	KPIs    []view.KPI    `json:"kpis,omitempty"`
	Actions []view.Action `json:"actions,omitempty"`
	Main    []view.Tagged `json:"main,omitempty"`
	Sidebar []view.Tagged `json:"sidebar,omitempty"`
}

// EncodeDashboard tags every variant of res with its kind.
func EncodeDashboard[K ~string, W view.Variant[K]](res *DashboardResult[W]) DashboardDoc {
	out := DashboardDoc{
		Header: res.Config.Header,
		Tab:    res.Tab.ID,
		Global: view.Tag[K](res.Config.Global),
	}
	for _, t := range res.Config.Tabs {
		out.Tabs = append(out.Tabs, TabDoc{ID: t.ID, Label: t.Label})
	}
	for _, r := range res.Regions {
		out.Regions = append(out.Regions, RegionDoc{Name: r.Name, Variants: view.Tag[K](r.Variants)})
	}
	return out
}

// EncodeDetail tags every section of a Ready page with its kind.
func EncodeDetail[K ~string, S view.Variant[K]](res *DetailResult[view.DetailConfig[S]]) DetailDoc {
	st := res.State
	out := DetailDoc{Entity: res.Entity, ID: st.ID, Phase: st.Phase.String()}
	if st.Phase == view.Ready {
		cfg := st.Config
		out.Header = &cfg.Header
		out.KPIs = cfg.KPIs
		out.Actions = cfg.Actions
		out.Main = view.Tag[K](cfg.Main)
		out.Sidebar = view.Tag[K](cfg.Sidebar)
	}
	return out
}
