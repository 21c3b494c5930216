package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/metrics"
)

type MetricsMiddleware struct{}

func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Record observes request count and latency labelled by route template.
// Unmatched routes share a single label.
func (m *MetricsMiddleware) Record() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			metrics.RecordHTTPRequest(
				c.Request().Method,
				path,
				strconv.Itoa(responseStatus(c, err)),
				time.Since(start).Seconds(),
			)

			return err
		}
	}
}
