package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/account-service/internal/api/middleware"
)

// ctxAccountID returns the account id injected by the Auth middleware. An
// empty value means the route was registered without Auth.
func ctxAccountID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.AccountIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
