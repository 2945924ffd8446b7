package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tasktrack/internal/auth"
	"tasktrack/internal/service"
)

// TaskHandler handles task import and retrieval endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// UploadCSV godoc
// @Summary Bulk-import tasks for an event from a CSV file
// @Tags tasks
// @Accept multipart/form-data
// @Produce json
// @Param eventId path int true "Event ID"
// @Param file formData file true "CSV file with header S.no,Task,Description,Name,Department"
// @Success 201 {object} service.UploadResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /tasks/upload-csv/{eventId} [post]
func (h *TaskHandler) UploadCSV(c echo.Context) error {
	eventID, err := uintParam(c, "eventId")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return echo.NewHTTPError(http.StatusBadRequest, "only CSV files are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}

	result, err := h.taskService.UploadCSV(c.Request().Context(), eventID, data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, result)
}

// GetEventTasks godoc
// @Summary List an event's tasks in sequence order
// @Tags tasks
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} service.TaskView
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /tasks/event/{eventId} [get]
func (h *TaskHandler) GetEventTasks(c echo.Context) error {
	eventID, err := uintParam(c, "eventId")
	if err != nil {
		return err
	}

	tasks, err := h.taskService.GetEventTasks(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

// GetMyTasks godoc
// @Summary List tasks assigned to the caller or their department
// @Tags tasks
// @Produce json
// @Success 200 {array} service.TaskView
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /tasks/my-tasks [get]
func (h *TaskHandler) GetMyTasks(c echo.Context) error {
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.GetMyTasks(c.Request().Context(), identity.UserID, identity.DepartmentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

// GetTask godoc
// @Summary Get a task with its assignments
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} service.TaskView
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}
