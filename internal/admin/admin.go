package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mbticonsultant/internal/metrics"
)

// HealthFunc reports whether the application can serve renders
type HealthFunc func(r *http.Request) error

// NewRouter builds the admin mux: health, prometheus metrics and pprof
func NewRouter(m *metrics.Metrics, health HealthFunc) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r); err != nil {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", m.Handler())
	router.Mount("/debug", middleware.Profiler())

	return router
}
