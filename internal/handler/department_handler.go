package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktrack/internal/service"
)

// DepartmentHandler handles department CRUD endpoints.
type DepartmentHandler struct {
	departmentService service.DepartmentService
}

// NewDepartmentHandler creates a new department handler.
func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// DepartmentRequest represents a department create/update payload.
type DepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

// Create godoc
// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Param request body DepartmentRequest true "Department data"
// @Success 201 {object} model.Department
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	department, err := h.departmentService.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, department)
}

// List godoc
// @Summary List departments with member counts
// @Tags departments
// @Produce json
// @Success 200 {array} service.DepartmentListItem
// @Security BearerAuth
// @Router /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.departmentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Get godoc
// @Summary Get a department with its members
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} service.DepartmentDetail
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	department, err := h.departmentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Update godoc
// @Summary Rename a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body DepartmentRequest true "Department data"
// @Success 200 {object} model.Department
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [patch]
func (h *DepartmentHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	department, err := h.departmentService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Remove godoc
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) Remove(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.departmentService.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "department removed successfully",
	})
}
