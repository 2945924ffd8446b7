package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tasktrack/internal/auth"
	"tasktrack/internal/service"
)

// AssignmentHandler handles assignment endpoints.
type AssignmentHandler struct {
	assignmentService service.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// CreateAssignmentRequest represents an assignment creation request. At least
// one of user_id and department_id must be supplied.
type CreateAssignmentRequest struct {
	TaskID       uint  `json:"task_id" validate:"required"`
	UserID       *uint `json:"user_id"`
	DepartmentID *uint `json:"department_id"`
}

// Create godoc
// @Summary Assign a task to a user and/or department
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentView
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c echo.Context) error {
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		return err
	}

	var req CreateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assignment, err := h.assignmentService.Create(c.Request().Context(), service.CreateAssignmentInput{
		TaskID:       req.TaskID,
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
	}, identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, assignment)
}

// FindByTask godoc
// @Summary List assignments of a task
// @Tags assignments
// @Produce json
// @Param taskId path int true "Task ID"
// @Success 200 {array} service.AssignmentView
// @Security BearerAuth
// @Router /assignments/task/{taskId} [get]
func (h *AssignmentHandler) FindByTask(c echo.Context) error {
	taskID, err := uintParam(c, "taskId")
	if err != nil {
		return err
	}

	assignments, err := h.assignmentService.FindByTask(c.Request().Context(), taskID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assignments)
}

// Remove godoc
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) Remove(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.assignmentService.Remove(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "assignment removed successfully",
	})
}
