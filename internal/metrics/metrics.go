package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shaum_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shaum_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	prayerSolveSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shaum_prayer_solve_seconds",
			Help:    "Duration of one full prayer-times solve.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	visibilityEvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shaum_visibility_evaluations_total",
			Help: "Total crescent visibility evaluations by outcome.",
		},
		[]string{"outcome"},
	)

	fastingAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shaum_fasting_analyses_total",
			Help: "Total fasting analyses by resolved status.",
		},
		[]string{"status"},
	)

	geoLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shaum_geo_lookups_total",
			Help: "Total IP geolocation lookups by result.",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(prayerSolveSeconds)
	prometheus.MustRegister(visibilityEvaluationsTotal)
	prometheus.MustRegister(fastingAnalysesTotal)
	prometheus.MustRegister(geoLookupsTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObservePrayerSolve records the duration of a prayer-times calculation.
func ObservePrayerSolve(d time.Duration) {
	prayerSolveSeconds.Observe(d.Seconds())
}

// RecordVisibility counts one visibility evaluation by outcome.
func RecordVisibility(visible bool) {
	outcome := "not_visible"
	if visible {
		outcome = "visible"
	}
	visibilityEvaluationsTotal.WithLabelValues(outcome).Inc()
}

// RecordFastingAnalysis counts one fasting analysis by resolved status name.
func RecordFastingAnalysis(status string) {
	fastingAnalysesTotal.WithLabelValues(status).Inc()
}

// RecordGeoLookup counts one geolocation lookup.
func RecordGeoLookup(ok bool) {
	result := "error"
	if ok {
		result = "ok"
	}
	geoLookupsTotal.WithLabelValues(result).Inc()
}

// knownRoutes are the exact paths the server registers. Anything else
// (scanners, bots, typos) collapses to "other" so path labels stay
// bounded.
var knownRoutes = map[string]bool{
	"/":                    true,
	"/healthz":             true,
	"/readyz":              true,
	"/metrics":             true,
	"/api/v1/fasting":      true,
	"/api/v1/prayer-times": true,
	"/api/v1/visibility":   true,
	"/api/v1/location":     true,
}

func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
