package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts HTTP requests by method, route and status.
type Metrics struct {
	requestCount *prometheus.CounterVec
}

// NewMetrics registers the request counter with the given registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
	}
	if err := reg.Register(m.requestCount); err != nil {
		return nil, err
	}
	return m, nil
}

// Handler returns the gin middleware.
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		c.Next()

		// Route pattern keeps cardinality bounded; raw path only for 404s.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.requestCount.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
