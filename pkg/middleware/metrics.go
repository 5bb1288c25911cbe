package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// HTTPMetrics records a request counter and latency histogram per
// route. Must run after telemetry.Init so the meter is installed.
func HTTPMetrics() gin.HandlerFunc {
	requests, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "http_requests_total",
		Description: "Total HTTP requests",
		Unit:        "{request}",
	})
	if err != nil {
		return func(c *gin.Context) { c.Next() }
	}
	duration, err := telemetry.NewHistogram(telemetry.MetricOpts{
		Name:        "http_request_duration_seconds",
		Description: "HTTP request latency",
		Unit:        "s",
	})
	if err != nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// FullPath keeps cardinality bounded; raw URLs would explode it
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := []attribute.KeyValue{
			attribute.String("method", c.Request.Method),
			attribute.String("route", route),
			attribute.String("status", strconv.Itoa(c.Writer.Status())),
		}
		ctx := c.Request.Context()
		requests.Inc(ctx, attrs...)
		duration.Record(ctx, time.Since(start).Seconds(), attrs...)
	}
}
