package web

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"lab-dashboard/internal/app"
	"lab-dashboard/internal/core"
	"lab-dashboard/internal/dashboards/business"
	"lab-dashboard/internal/dashboards/research"
	"lab-dashboard/internal/details/contract"
	"lab-dashboard/internal/details/equipment"
	"lab-dashboard/internal/details/experiment"
	"lab-dashboard/internal/ui"
	"lab-dashboard/internal/view"
	"lab-dashboard/web/templates/layouts"
	"lab-dashboard/web/templates/pages"
)

// ── Dashboards ────────────────────────────────────────────────────────────────

// businessPage handles GET /business?tab=.
func (h *Handler) businessPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.BusinessDashboard(r.Context(), r.URL.Query().Get("tab"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	d := h.layout(r, res.Config.Header.Title, "business")
	h.render(w, r, http.StatusOK, pages.Dashboard(d, dashboardView(business.HTML, res, "/business", d.SidebarCollapsed)))
}

// researchPage handles GET /research?tab=.
func (h *Handler) researchPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ResearchDashboard(r.Context(), r.URL.Query().Get("tab"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	d := h.layout(r, res.Config.Header.Title, "research")
	h.render(w, r, http.StatusOK, pages.Dashboard(d, dashboardView(research.HTML, res, "/research", d.SidebarCollapsed)))
}

func dashboardView[K ~string, W view.Variant[K]](reg *view.Registry[K, W, templ.Component], res *app.DashboardResult[W], base string, collapsed bool) pages.DashboardView {
	tabs := make([]ui.TabLink, len(res.Config.Tabs))
	for i, t := range res.Config.Tabs {
		q := url.Values{"tab": {t.ID}}
		if collapsed {
			q.Set("sidebar", "closed")
		}
		tabs[i] = ui.TabLink{Label: t.Label, Href: base + "?" + q.Encode(), Active: t.ID == res.Tab.ID}
	}
	return pages.DashboardView{
		Header:  res.Config.Header,
		Global:  view.DispatchAll(reg, res.Config.Global),
		Tabs:    tabs,
		Regions: view.RenderRegions(reg, res.Regions),
	}
}

// ── Detail pages ──────────────────────────────────────────────────────────────

// equipmentPage handles GET /equipment/{id}.
func (h *Handler) equipmentPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Equipment(r.Context(), id(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	detailPage(h, w, r, equipment.HTML, res)
}

// contractPage handles GET /contracts/{id}.
func (h *Handler) contractPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Contract(r.Context(), id(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	detailPage(h, w, r, contract.HTML, res)
}

// experimentPage handles GET /experiments/{id}.
func (h *Handler) experimentPage(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Experiment(r.Context(), id(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	detailPage(h, w, r, experiment.HTML, res)
}

// detailPage maps the settled page state to a response: Ready renders the
// page, NotFound a 404 naming the id, and Loading a placeholder that reloads
// itself.
func detailPage[K ~string, S view.Variant[K]](h *Handler, w http.ResponseWriter, r *http.Request, reg *view.Registry[K, S, templ.Component], res *app.DetailResult[view.DetailConfig[S]]) {
	st, entity := res.State, res.Entity
	switch st.Phase {
	case view.Ready:
		cfg := st.Config
		d := h.layout(r, cfg.Header.Title, string(entity))
		h.render(w, r, http.StatusOK, pages.Detail(d, pages.DetailView{
			Header:  cfg.Header,
			KPIs:    cfg.KPIs,
			Actions: cfg.Actions,
			Main:    view.DispatchAll(reg, cfg.Main),
			Sidebar: view.DispatchAll(reg, cfg.Sidebar),
		}))
	case view.NotFound:
		d := h.layout(r, entity.Singular()+" not found", string(entity))
		h.render(w, r, http.StatusNotFound, pages.NotFound(d, entity.Singular(), st.ID, entity.Href(), entity.Plural()))
	default:
		d := h.layout(r, "Loading", string(entity))
		d.RefreshAfter = 1
		h.render(w, r, http.StatusAccepted, pages.Loading(d, entity.Singular(), st.ID))
	}
}

// ── Listings ──────────────────────────────────────────────────────────────────

// listingPage handles GET /{entity}.
func (h *Handler) listingPage(entity app.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.svc.List(r.Context(), entity)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		rows := make([][]ui.Cell, len(res.Rows))
		for i, row := range res.Rows {
			rows[i] = []ui.Cell{
				{Text: row.ID, Href: row.Href},
				{Text: row.Title, Href: row.Href},
				{Text: row.Subtitle},
				{Text: row.Status.Text, Tone: row.Status.Tone},
			}
		}
		d := h.layout(r, entity.Plural(), string(entity))
		h.render(w, r, http.StatusOK, pages.Listing(d, pages.ListingView{
			Header:  view.Header{Title: entity.Plural(), Subtitle: core.Count(len(rows)) + " records"},
			Columns: []string{"ID", "Name", "Details", "Status"},
			Rows:    rows,
		}))
	}
}

// notFoundPage answers unmatched routes.
func (h *Handler) notFoundPage(w http.ResponseWriter, r *http.Request) {
	d := h.layout(r, "Page not found", "")
	h.render(w, r, http.StatusNotFound, pages.NotFound(d, "page", r.URL.Path, "/business", "the dashboard"))
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// layout builds the shell data for a page. The sidebar flag travels in the
// query string so every page can be rendered from its URL alone.
func (h *Handler) layout(r *http.Request, title, activeNav string) layouts.AppLayoutData {
	return layouts.AppLayoutData{
		Title:            title,
		LabName:          h.labName,
		AsOf:             core.Date(h.svc.AsOf()),
		ActiveNav:        activeNav,
		SidebarCollapsed: r.URL.Query().Get("sidebar") == "closed",
	}
}

// render buffers c so a failure part-way leaves the response untouched.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fail reports err as a 500 unless the client has gone away.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if isCancelled(r, err) {
		h.log.Debug("request cancelled", "path", r.URL.Path, "request_id", requestIDFromContext(r.Context()))
		return
	}
	h.log.Error("request failed", "path", r.URL.Path, "error", err, "request_id", requestIDFromContext(r.Context()))
	writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
}
