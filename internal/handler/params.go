package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// uintParam parses a numeric path parameter.
func uintParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
