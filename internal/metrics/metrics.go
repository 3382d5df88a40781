// Package metrics provides Prometheus instrumentation for the aggregator.
//
// Exposed at GET /metrics when METRICS_ENABLED is true:
//
//	sportsagg_tournament_responses_total    counter: envelopes served, by mode
//	sportsagg_gemini_requests_total         counter: Gemini calls, by outcome
//	sportsagg_gemini_request_duration_secs  histogram: Gemini call latency
//	sportsagg_extraction_failures_total     counter: model answers with no usable JSON
//	sportsagg_http_requests_total           counter: HTTP requests by method/route/status
//	sportsagg_http_request_duration_secs    histogram: HTTP latency by method/route
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered on one registry. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	Responses          *prometheus.CounterVec
	GeminiRequests     *prometheus.CounterVec
	GeminiDuration     prometheus.Histogram
	ExtractionFailures prometheus.Counter
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New registers all collectors with reg. Pass prometheus.NewRegistry() in
// tests to keep registrations isolated.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		Responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportsagg_tournament_responses_total",
			Help: "Tournament envelopes served, by data mode.",
		}, []string{"mode"}),
		GeminiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportsagg_gemini_requests_total",
			Help: "Gemini generateContent calls, by outcome.",
		}, []string{"outcome"}),
		GeminiDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sportsagg_gemini_request_duration_seconds",
			Help:    "Gemini generateContent latency in seconds.",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 30},
		}),
		ExtractionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sportsagg_extraction_failures_total",
			Help: "Model answers from which no tournament list could be extracted.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sportsagg_http_requests_total",
			Help: "Total HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sportsagg_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		m.Responses,
		m.GeminiRequests,
		m.GeminiDuration,
		m.ExtractionFailures,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// ObserveResponse counts one envelope served in mode.
func (m *Metrics) ObserveResponse(mode string) {
	if m == nil {
		return
	}
	m.Responses.WithLabelValues(mode).Inc()
}

// ObserveGemini records one Gemini call.
func (m *Metrics) ObserveGemini(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.GeminiRequests.WithLabelValues(outcome).Inc()
	m.GeminiDuration.Observe(d.Seconds())
}

// ObserveExtractionFailure counts one unusable model answer.
func (m *Metrics) ObserveExtractionFailure() {
	if m == nil {
		return
	}
	m.ExtractionFailures.Inc()
}

// Handler returns the scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency. The route label is chi's
// route pattern, so /api/tournaments/{sport} stays a single series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
