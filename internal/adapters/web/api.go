package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lab-dashboard/internal/app"
	"lab-dashboard/internal/core"
	"lab-dashboard/internal/dashboards/business"
	"lab-dashboard/internal/dashboards/research"
	"lab-dashboard/internal/details/contract"
	"lab-dashboard/internal/details/equipment"
	"lab-dashboard/internal/details/experiment"
	"lab-dashboard/internal/view"
)

// apiBusiness handles GET /api/dashboards/business?tab=.
func (h *Handler) apiBusiness(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.BusinessDashboard(r.Context(), r.URL.Query().Get("tab"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app.EncodeDashboard[business.Kind](res))
}

// apiResearch handles GET /api/dashboards/research?tab=.
func (h *Handler) apiResearch(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ResearchDashboard(r.Context(), r.URL.Query().Get("tab"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app.EncodeDashboard[research.Kind](res))
}

// apiEquipment handles GET /api/equipment/{id}.
func (h *Handler) apiEquipment(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Equipment(r.Context(), id(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeDetail[equipment.Kind](w, r, res)
}

// apiContract handles GET /api/contracts/{id}.
func (h *Handler) apiContract(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Contract(r.Context(), id(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeDetail[contract.Kind](w, r, res)
}

// apiExperiment handles GET /api/experiments/{id}.
func (h *Handler) apiExperiment(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Experiment(r.Context(), id(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeDetail[experiment.Kind](w, r, res)
}

// writeDetail answers 200 with the page, 404 in the error envelope, or 202
// while the lookup is still pending.
func writeDetail[K ~string, S view.Variant[K]](w http.ResponseWriter, r *http.Request, res *app.DetailResult[view.DetailConfig[S]]) {
	switch res.State.Phase {
	case view.Ready:
		writeJSON(w, http.StatusOK, app.EncodeDetail[K](res))
	case view.NotFound:
		writeError(w, r, res.Entity.Singular()+" "+res.State.ID+" not found", "NOT_FOUND", http.StatusNotFound)
	default:
		writeJSON(w, http.StatusAccepted, app.EncodeDetail[K](res))
	}
}

// apiList handles GET /api/{entity}.
func (h *Handler) apiList(entity app.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.svc.List(r.Context(), entity)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// apiSchema handles GET /api/schema/{union}.
func (h *Handler) apiSchema(w http.ResponseWriter, r *http.Request) {
	s, err := app.Schema(chi.URLParam(r, "union"))
	if errors.Is(err, core.ErrNotFound) {
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// apiRegistries handles GET /api/registries.
func (h *Handler) apiRegistries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Registries())
}
