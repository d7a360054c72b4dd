package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the service
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight *prometheus.GaugeVec
	ParseFailures    *prometheus.CounterVec
	ZoneCacheSize    prometheus.GaugeFunc
}

// NewMetrics creates a new metrics instance. zoneCacheSize reports the
// current number of cached timezone entries.
func NewMetrics(serviceName string, zoneCacheSize func() float64) *Metrics {
	return &Metrics{
		RequestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of requests",
			},
			[]string{"path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		RequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
			[]string{"path"},
		),
		ParseFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "parse_failures_total",
				Help:      "Date-time parse failures by error kind",
			},
			[]string{"kind"}, // kind: no_pattern_match, invalid_calendar_date
		),
		ZoneCacheSize: promauto.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "metargb",
				Subsystem: serviceName,
				Name:      "zone_cache_entries",
				Help:      "Number of cached timezone resolutions",
			},
			zoneCacheSize,
		),
	}
}

// statusRecorder keeps the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware returns an HTTP middleware that tracks request count, duration
// and in-flight gauge per path.
func Middleware(metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			metrics.RequestsInFlight.WithLabelValues(path).Inc()
			defer metrics.RequestsInFlight.WithLabelValues(path).Dec()

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			metrics.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
			metrics.RequestCounter.WithLabelValues(path, http.StatusText(rec.status)).Inc()
		})
	}
}
