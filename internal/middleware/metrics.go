package middleware

import (
	"strconv"
	"time"

	"github.com/deppfellow/cpf-validator/internal/server"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware feeds the Prometheus request collectors.
type MetricsMiddleware struct {
	server *server.Server
}

// NewMetricsMiddleware constructs MetricsMiddleware.
func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Observe records one request per call with the route template (not the raw
// path, to keep label cardinality bounded) and the final status code.
func (m *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := StatusFromError(err, c.Response().Status)

			m.server.Metrics.ObserveRequest(c.Request().Method, route, strconv.Itoa(status), time.Since(start))

			return err
		}
	}
}
