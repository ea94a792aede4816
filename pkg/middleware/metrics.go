package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestMetrics records per-route request counts and latencies.
type RequestMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewRequestMetrics() RequestMetrics {
	return RequestMetrics{
		requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "quickblog_http_requests_total",
			Help: "Number of handled HTTP requests.",
		}, []string{"method", "path", "status"}),
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quickblog_http_request_duration_seconds",
			Help:    "HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

func (m RequestMetrics) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if m.requests == nil {
			return next(w, r)
		}

		start := time.Now()
		err := next(w, r)

		status := http.StatusOK
		if err != nil {
			status = err.Status
		}

		path := routeLabel(r)
		m.requests.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// routeLabel keeps the label cardinality bounded: the matched mux pattern
// collapses every "/api/blogs/{uuid}" hit into one series instead of one per
// UUID. Requests that never matched a pattern fall back to the raw path.
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return r.URL.Path
	}

	if _, route, found := strings.Cut(r.Pattern, " "); found {
		return route
	}

	return r.Pattern
}
