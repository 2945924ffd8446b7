package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

// EventListItem is one entry of the event listing.
type EventListItem struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	EventDate   time.Time    `json:"event_date"`
	CreatedAt   time.Time    `json:"created_at"`
	CreatedBy   *UserSummary `json:"created_by,omitempty"`
	TaskCount   int64        `json:"task_count"`
}

// EventDetail is an event with its tasks in sequence order.
type EventDetail struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	EventDate   time.Time    `json:"event_date"`
	CreatedAt   time.Time    `json:"created_at"`
	CreatedBy   *UserSummary `json:"created_by,omitempty"`
	Tasks       []TaskView   `json:"tasks"`
}

// CreateEventInput carries the fields needed to create an event.
type CreateEventInput struct {
	Name        string
	Description string
	EventDate   time.Time
}

// UpdateEventInput carries a partial event update; nil fields are untouched.
type UpdateEventInput struct {
	Name        *string
	Description *string
	EventDate   *time.Time
}

// EventService handles event CRUD.
type EventService interface {
	Create(ctx context.Context, input CreateEventInput, createdByID uint) (*EventDetail, error)
	List(ctx context.Context) ([]EventListItem, error)
	Get(ctx context.Context, id uint) (*EventDetail, error)
	Update(ctx context.Context, id uint, input UpdateEventInput) (*model.Event, error)
	Remove(ctx context.Context, id uint) error
}

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

// NewEventService creates a new event service.
func NewEventService(eventRepo repository.EventRepository, userRepo repository.UserRepository) EventService {
	return &eventService{eventRepo: eventRepo, userRepo: userRepo}
}

func (s *eventService) Create(ctx context.Context, input CreateEventInput, createdByID uint) (*EventDetail, error) {
	event := &model.Event{
		Name:        input.Name,
		Description: input.Description,
		EventDate:   input.EventDate,
		CreatedByID: createdByID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return s.Get(ctx, event.ID)
}

func (s *eventService) List(ctx context.Context) ([]EventListItem, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]EventListItem, 0, len(events))
	for i := range events {
		e := &events[i]
		items = append(items, EventListItem{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			EventDate:   e.EventDate,
			CreatedAt:   e.CreatedAt,
			CreatedBy:   userSummary(e.CreatedBy),
			TaskCount:   e.TaskCount,
		})
	}
	return items, nil
}

func (s *eventService) Get(ctx context.Context, id uint) (*EventDetail, error) {
	event, err := s.eventRepo.FindByIDWithTasks(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &EventDetail{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		EventDate:   event.EventDate,
		CreatedAt:   event.CreatedAt,
		CreatedBy:   userSummary(event.CreatedBy),
		Tasks:       taskViews(event.Tasks, false),
	}, nil
}

func (s *eventService) Update(ctx context.Context, id uint, input UpdateEventInput) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Remove(ctx context.Context, id uint) error {
	if _, err := s.eventRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEventNotFound
		}
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}
