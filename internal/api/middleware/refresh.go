package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelhub/account-service/internal/api/metrics"
	"github.com/hotelhub/account-service/internal/core/ports"
)

// HeaderNewToken carries a re-issued session token.
const HeaderNewToken = "X-New-Token"

// Refresh re-issues the bearer token when it is valid but inside the refresh
// window, exposing the new token in the X-New-Token response header. Requests
// without a valid token pass through untouched; rejecting them is Auth's job.
func Refresh(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request())
			if !ok {
				return next(c)
			}

			v := tokens.ValidateToken(raw)
			if v.State() != ports.TokenNearExpiry {
				return next(c)
			}

			fresh := tokens.GenerateToken(v.AccountID)
			if fresh == "" {
				log.Warn().Str("account_id", v.AccountID).Msg("token refresh failed")
				return next(c)
			}

			c.Response().Header().Set(HeaderNewToken, fresh)
			metrics.TokensRefreshedTotal.Inc()
			return next(c)
		}
	}
}
