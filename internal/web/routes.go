package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/fatihpirim/PatriotHacks/internal/metrics"
	"github.com/fatihpirim/PatriotHacks/internal/middleware"
)

// Routes mounts the HTML pages plus /healthz and /metrics.
func Routes(h *Handler, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logging(m))
	r.Use(chimw.Recoverer)

	// LIST - every group with its pages
	r.Get("/", h.ServeIndex)

	// CREATE GROUP - form and submission
	r.Get("/add_group", h.ServeAddGroup)
	r.Post("/add_group", h.HandleAddGroup)

	// DELETE GROUP - no confirmation step, GET or POST
	r.Get("/delete_group/{groupID:[0-9]+}", h.HandleDeleteGroup)
	r.Post("/delete_group/{groupID:[0-9]+}", h.HandleDeleteGroup)

	// CREATE PAGE - form and submission
	r.Get("/add_page/{groupID:[0-9]+}", h.ServeAddPage)
	r.Post("/add_page/{groupID:[0-9]+}", h.HandleAddPage)

	r.Get("/healthz", h.ServeHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}
