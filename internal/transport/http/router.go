// Package httptransport assembles the HTTP surface. Handlers live next to
// their domains; this package only mounts them and the operational endpoints.
package httptransport

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tastebook/internal/platform/metrics"
	"tastebook/internal/platform/middleware"
	"tastebook/internal/transport/http/shared"
)

// Registrar is a domain handler that mounts its own routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter builds the root router: global middleware, operational endpoints,
// then every domain handler's routes.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, db *sql.DB, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))

	r.Get("/healthz", handleHealthz)
	r.Get("/readyz", handleReadyz(db))
	r.Handle("/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz reports readiness by pinging the database. Redis and Kafka are
// optional dependencies and do not gate readiness.
func handleReadyz(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
