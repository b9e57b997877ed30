package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marianozunino/share/internal/metrics"
)

// Metrics records request counts and latency per route
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			// Route template, e.g. /files/:id/download
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			method := c.Request().Method
			status := strconv.Itoa(responseStatus(c, err))

			metrics.HTTPRequests.WithLabelValues(method, path, status).Inc()
			metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// responseStatus predicts the status the error handler will write when the
// handler returned an error before committing a response
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
