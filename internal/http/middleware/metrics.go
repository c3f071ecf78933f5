package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_http_requests_total",
			Help: "HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)
	Mutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_mutations_total",
			Help: "Collection mutations by operation",
		},
		[]string{"operation"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_rate_limited_total",
			Help: "Requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(Mutations)
	prometheus.MustRegister(RLBlocked)
}

// Metrics counts every request by route template and response status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		HTTPRequests.WithLabelValues(endpoint, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// CountMutation records one collection mutation.
func CountMutation(operation string) {
	Mutations.WithLabelValues(operation).Inc()
}
