package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/hotelhub/account-service/internal/api/metrics"
)

// LoginRateLimit limits login attempts per client IP using store. The IP
// comes from c.RealIP, so the Echo instance must set an IPExtractor that
// ignores client-supplied forwarding headers.
func LoginRateLimit(store echomiddleware.RateLimiterStore) echo.MiddlewareFunc {
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "Unable to identify client").SetInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			metrics.LoginsTotal.WithLabelValues(metrics.LoginRateLimited).Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts")
		},
	})
}
