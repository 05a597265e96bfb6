// Package proxy is the local dev proxy that gives browser callers a
// same-origin surface: requests under /api/* are forwarded to the
// backend with the prefix stripped, so the client can run with an empty
// base address and still hit the real API.
package proxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lifeforge-dev/lifeforge/metrics"
	"github.com/lifeforge-dev/lifeforge/shared/config"
	"github.com/lifeforge-dev/lifeforge/shared/logger"
)

// New builds the proxy handler for the given settings.
func New(cfg config.Proxy) (http.Handler, error) {
	backend, err := url.Parse(cfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", cfg.BackendURL, err)
	}

	rp := httputil.NewSingleHostReverseProxy(backend)
	// Negative interval flushes every write through immediately, which
	// the streamed chat responses depend on.
	rp.FlushInterval = -1
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Log.Error("proxy error", "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `{"detail":"Backend unavailable. Is the API server running?"}`)
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok"}`)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/api/*", http.StripPrefix("/api", rp))

	return r, nil
}
