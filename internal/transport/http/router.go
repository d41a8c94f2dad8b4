package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mitsuba/clubport/internal/config"
	"github.com/mitsuba/clubport/internal/port"
)

// NewRouter assembles the HTTP surface: the dispatch entry point, the
// delivery-status probe, the operator websocket feed and the usual
// health/metrics endpoints.
func NewRouter(cfg *config.Config, notifier port.Notifier, feed *Feed) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Idempotency-Key"},
	}))
	r.Use(MetricsMiddleware)

	handler := NewNotifyHandler(notifier)

	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitRPS*2))
		r.Use(MaxBodySizeMiddleware(1 << 20))
		r.With(IdempotencyMiddleware()).Post("/dispatch", handler.Dispatch)
		r.With(CircuitBreakerMiddleware(5, "30s", 2)).Get("/delivery-status", handler.Status)
	})

	if feed != nil {
		r.Get("/ws/notifications", feed.Handler)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
