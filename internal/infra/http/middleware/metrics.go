package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of in-flight HTTP requests",
		},
	)

	leadsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_leads_created_total",
			Help: "Total number of leads created",
		},
		[]string{"source"},
	)

	contactFormsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_contact_forms_created_total",
			Help: "Total number of contact forms by lead resolution",
		},
		[]string{"resolution"},
	)

	newsletterChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_newsletter_requests_total",
			Help: "Total number of newsletter requests by action and resulting status",
		},
		[]string{"action", "status"},
	)

	analyticsEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_analytics_events_total",
			Help: "Total number of analytics events stored",
		},
		[]string{"event_type"},
	)
)

// Metrics labels by chi route pattern so unmatched paths collapse into one series.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		path := routePattern(r)
		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func RecordLeadCreated(source string) {
	leadsCreated.WithLabelValues(source).Inc()
}

func RecordContactForm(resolution string) {
	contactFormsCreated.WithLabelValues(resolution).Inc()
}

func RecordNewsletter(action, status string) {
	newsletterChanges.WithLabelValues(action, status).Inc()
}

func RecordAnalyticsEvent(eventType string) {
	analyticsEvents.WithLabelValues(eventType).Inc()
}
