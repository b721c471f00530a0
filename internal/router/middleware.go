package router

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/envelope-zero/savings-goals/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ryanuber/go-glob"
)

// metrics holds the Prometheus collectors of one router.
//
// Every router has its own registry so that routers can be created
// multiple times in the same process, e.g. in tests.
type metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// lener is implemented by stores that can report their size.
type lener interface {
	Len() int
}

// newMetrics creates and registers all Prometheus metrics.
func newMetrics(s store.Store) (*metrics, error) {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "requests_total",
				Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
			},
			[]string{"code", "method", "url"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "request_duration_seconds",
				Help: "The HTTP request latencies in seconds.",
			},
			[]string{"code", "method", "url"},
		),
	}

	collectors := []prometheus.Collector{
		m.requestCount,
		m.requestDuration,
	}

	if l, ok := s.(lener); ok {
		collectors = append(collectors, prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "savings_goals",
				Help: "How many savings goals are stored.",
			},
			func() float64 {
				return float64(l.Len())
			},
		))
	}

	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("could not register %T with Prometheus: %w", c, err)
		}
	}

	return m, nil
}

// Middleware updates Prometheus metrics.
func (m *metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		m.requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		m.requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

// originMatcher returns a function that allows all origins matching
// one of the glob patterns.
func originMatcher(patterns []string) func(string) bool {
	return func(origin string) bool {
		for _, pattern := range patterns {
			if glob.Glob(pattern, origin) {
				return true
			}
		}

		return false
	}
}
