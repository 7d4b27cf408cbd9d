package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalogproxy/internal/catalog"
)

var (
	Registry = prometheus.NewRegistry()

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	upstreamFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_fetch_total",
			Help: "Upstream catalog fetches by step and outcome.",
		},
		[]string{"step", "outcome"},
	)
	filterRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_filter_rejected_total",
			Help: "Records dropped by the catalog filter, by reason.",
		},
		[]string{"reason"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		upstreamFetchTotal,
		filterRejectedTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordRequest records one served request.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func RecordUpstream(step string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	upstreamFetchTotal.WithLabelValues(step, outcome).Inc()
}

// RecordRejected adds the per-reason rejection counts of one filter run.
func RecordRejected(st catalog.Stats) {
	for reason, n := range st.Rejected {
		filterRejectedTotal.WithLabelValues(string(reason)).Add(float64(n))
	}
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	}
	return "unknown"
}

// Middleware times every request. The endpoint label is the matched route
// pattern so path parameters do not explode cardinality.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		endpoint := c.Route().Path
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RecordRequest(c.Method(), endpoint, status, time.Since(start))
		return err
	}
}

// Handler serves the registry in the prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
