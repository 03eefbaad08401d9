// Package api exposes the engine over HTTP: fasting rulings, prayer
// times, crescent visibility reports and a geolocation convenience
// endpoint, plus the usual health and metrics surfaces.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/IRedDragonICY/shaum/internal/auth"
	"github.com/IRedDragonICY/shaum/internal/geo"
	"github.com/IRedDragonICY/shaum/internal/health"
	"github.com/IRedDragonICY/shaum/internal/metrics"
)

// Config carries the server's dependencies and settings.
type Config struct {
	Addr       string
	Logger     *slog.Logger
	Auth       auth.Config
	TrustProxy bool

	// Lookup and LocationCache back the /api/v1/location endpoint.
	// Either may be nil, in which case that capability is absent.
	Lookup        *geo.Lookup
	LocationCache *geo.Cache

	// ReadyCheck runs on each /readyz request; nil means always ready.
	ReadyCheck func() error
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	lookup     *geo.Lookup
	locCache   *geo.Cache
	trustProxy bool
}

// NewServer creates a configured HTTP server.
func NewServer(cfg Config) *Server {
	s := &Server{
		logger:     cfg.Logger,
		lookup:     cfg.Lookup,
		locCache:   cfg.LocationCache,
		trustProxy: cfg.TrustProxy,
	}

	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz(cfg.ReadyCheck))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /api/v1/fasting", s.handleFasting)
	mux.HandleFunc("GET /api/v1/prayer-times", s.handlePrayerTimes)
	mux.HandleFunc("GET /api/v1/visibility", s.handleVisibility)
	mux.HandleFunc("GET /api/v1/location", s.handleLocation)

	// Build middleware chain: metrics -> logging -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(cfg.Auth)(handler)
	handler = loggingMiddleware(cfg.Logger)(handler)
	handler = metrics.Middleware(handler)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", r.RemoteAddr,
			)
		})
	}
}
