package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktrack/internal/service"
)

// UserHandler handles user listing endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List godoc
// @Summary List users with department summaries
// @Tags users
// @Produce json
// @Success 200 {array} service.UserView
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
