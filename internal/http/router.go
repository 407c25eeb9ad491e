package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"gitea.jw6.us/james/officesched/internal/api"
	"gitea.jw6.us/james/officesched/internal/catalog"
	"gitea.jw6.us/james/officesched/internal/config"
	"gitea.jw6.us/james/officesched/internal/http/ratelimit"
	"gitea.jw6.us/james/officesched/internal/metrics"
	"gitea.jw6.us/james/officesched/internal/store"
)

// NewRouter wires all HTTP routes for the scheduling API.
func NewRouter(cfg *config.Config, st *store.EventStore, cat *catalog.Catalog) http.Handler {
	r := chi.NewRouter()

	// Write endpoints: 5 requests per second, burst of 10
	writeRateLimiter := ratelimit.New(rate.Limit(5), 10, 5*time.Minute, cfg.TrustedProxies)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if cat.Len() == 0 {
			http.Error(w, "unready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.PrometheusEnabled {
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			metrics.Handler().ServeHTTP(w, r)
		})
	}

	h := api.NewHandler(cfg, st, cat)

	r.Route("/api", func(r chi.Router) {
		r.Get("/calendar", h.Calendar)
		r.Get("/events", h.Events)
		r.Get("/agenda", h.Agenda)
		r.Get("/resources", h.Resources)
		r.Get("/bookings.ics", h.BookingsFeed)

		r.Group(func(r chi.Router) {
			r.Use(writeRateLimiter.Middleware())
			r.Post("/bookings", h.CreateBooking)
			r.Delete("/bookings/{id}", h.DeleteBooking)
		})
	})

	return r
}
