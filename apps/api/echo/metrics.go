package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "edutrack_http_requests_total",
		Help: "HTTP requests served, by method, route and status code.",
	},
	[]string{"method", "path", "code"},
)

func metricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}
			requestsTotal.WithLabelValues(
				ctx.Request().Method,
				ctx.Path(), // route template, not the raw URL
				strconv.Itoa(ctx.Response().Status),
			).Inc()
			return nil
		}
	}
}
