package handler

import "github.com/labstack/echo/v4"

// envelope is the success body of every API response. Errors use the same
// shape with success=false, rendered by the HTTP error handler.
type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, envelope{Success: true, Data: data})
}
