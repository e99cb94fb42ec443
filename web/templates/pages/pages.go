// Package pages composes the shell layout with page bodies.
package pages

import (
	"github.com/a-h/templ"

	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
	"lab-dashboard/web/templates/layouts"
)

// DashboardView is a dashboard whose variants have already been dispatched.
type DashboardView struct {
	Header  view.Header
	Global  []templ.Component
	Tabs    []ui.TabLink
	Regions []view.Rendered[templ.Component]
}

// Dashboard renders a dashboard page.
func Dashboard(d layouts.AppLayoutData, v DashboardView) templ.Component {
	return layouts.AppLayout(d, ui.Stack(
		ui.PageHeader(v.Header),
		ui.Element("div", "global", ui.Stack(v.Global...)),
		ui.Tabs(v.Tabs),
		ui.Regions(v.Regions),
	))
}

// DetailView is a detail page whose sections have already been dispatched.
type DetailView struct {
	Header  view.Header
	KPIs    []view.KPI
	Actions []view.Action
	Main    []templ.Component
	Sidebar []templ.Component
}

// Detail renders an entity detail page with a main column and a sidebar.
func Detail(d layouts.AppLayoutData, v DetailView) templ.Component {
	return layouts.AppLayout(d, ui.Stack(
		ui.PageHeader(v.Header),
		ui.KPIStrip(v.KPIs),
		ui.Actions(v.Actions),
		ui.Element("div", "detail", ui.Stack(
			ui.Element("div", "detail-main", ui.Stack(v.Main...)),
			ui.Element("aside", "detail-sidebar", ui.Stack(v.Sidebar...)),
		)),
	))
}

// NotFound renders the view shown when an identifier does not resolve.
func NotFound(d layouts.AppLayoutData, entity, id, backHref, backLabel string) templ.Component {
	return layouts.AppLayout(d, ui.Element("div", "not-found", ui.Stack(
		ui.Element("h1", "", ui.Text(entity+" not found")),
		ui.Paragraph("No "+entity+" with id "+id+" exists."),
		ui.Link("← Back to "+backLabel, backHref),
	)))
}

// Loading renders the placeholder shown while a lookup is pending.
func Loading(d layouts.AppLayoutData, entity, id string) templ.Component {
	return layouts.AppLayout(d, ui.Element("div", "loading", ui.Stack(
		ui.Element("div", "spinner", nil),
		ui.Paragraph("Loading "+entity+" "+id+"…"),
	)))
}

// ListingView is a table of entities linking to their detail pages.
type ListingView struct {
	Header  view.Header
	Columns []string
	Rows    [][]ui.Cell
}

// Listing renders an entity listing page.
func Listing(d layouts.AppLayoutData, v ListingView) templ.Component {
	return layouts.AppLayout(d, ui.Stack(
		ui.PageHeader(v.Header),
		ui.Card("", "", ui.Table(v.Columns, v.Rows)),
	))
}
