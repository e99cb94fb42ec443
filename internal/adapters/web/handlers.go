package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lab-dashboard/internal/app"
	"lab-dashboard/internal/platform/logger"
	webui "lab-dashboard/web"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc        app.ApplicationService
	log        *logger.Logger
	labName    string
	fileServer http.Handler
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, log *logger.Logger, labName string, allowedOrigins []string) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	h := &Handler{
		svc:        svc,
		log:        log,
		labName:    labName,
		fileServer: http.FileServer(http.FS(webui.Assets())),
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))
	r.Use(CORS(allowedOrigins))

	r.Get("/api/health", h.health)

	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		http.StripPrefix("/static", h.fileServer).ServeHTTP(w, req)
	})

	// ── Pages ─────────────────────────────────────────────────────────────────
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/business", http.StatusFound)
	})
	r.Get("/business", h.businessPage)
	r.Get("/research", h.researchPage)
	r.Get("/equipment", h.listingPage(app.EntityEquipment))
	r.Get("/equipment/{id}", h.equipmentPage)
	r.Get("/contracts", h.listingPage(app.EntityContract))
	r.Get("/contracts/{id}", h.contractPage)
	r.Get("/experiments", h.listingPage(app.EntityExperiment))
	r.Get("/experiments/{id}", h.experimentPage)

	// ── JSON API ──────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboards/business", h.apiBusiness)
		r.Get("/dashboards/research", h.apiResearch)
		r.Get("/equipment", h.apiList(app.EntityEquipment))
		r.Get("/equipment/{id}", h.apiEquipment)
		r.Get("/contracts", h.apiList(app.EntityContract))
		r.Get("/contracts/{id}", h.apiContract)
		r.Get("/experiments", h.apiList(app.EntityExperiment))
		r.Get("/experiments/{id}", h.apiExperiment)
		r.Get("/schema/{union}", h.apiSchema)
		r.Get("/registries", h.apiRegistries)
	})

	r.NotFound(h.notFoundPage)
	return r
}

// health returns service status and the snapshot's reference date.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
		AsOf   string `json:"as_of"`
	}
	writeJSON(w, http.StatusOK, response{Status: "ok", AsOf: h.svc.AsOf().Format("2006-01-02")})
}

// id extracts the {id} URL parameter.
func id(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// isCancelled reports whether err is the client going away.
func isCancelled(r *http.Request, err error) bool {
	return r.Context().Err() != nil && errors.Is(err, r.Context().Err())
}
