package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tasktrack/internal/auth"
	"tasktrack/internal/service"
)

// EventHandler handles event CRUD endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// CreateEventRequest represents an event creation request.
type CreateEventRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" validate:"required"`
}

// UpdateEventRequest represents a partial event update.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	EventDate   *string `json:"event_date"`
}

func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event data"
// @Success 201 {object} service.EventDetail
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		return err
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event_date")
	}

	event, err := h.eventService.Create(c.Request().Context(), service.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		EventDate:   eventDate,
	}, identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, event)
}

// List godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} service.EventListItem
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.eventService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Get godoc
// @Summary Get an event with its tasks
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} service.EventDetail
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body UpdateEventRequest true "Fields to update"
// @Success 200 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [patch]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	input := service.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.EventDate != nil {
		eventDate, err := parseEventDate(*req.EventDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid event_date")
		}
		input.EventDate = &eventDate
	}

	event, err := h.eventService.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Remove godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *EventHandler) Remove(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventService.Remove(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "event removed successfully",
	})
}
