package repository

import (
	"context"

	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// EventWithTaskCount pairs an event with its task count for listings.
type EventWithTaskCount struct {
	model.Event
	TaskCount int64 `json:"task_count"`
}

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	FindByIDWithTasks(ctx context.Context, id uint) (*model.Event, error)
	List(ctx context.Context) ([]EventWithTaskCount, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Event{}, id).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDWithTasks loads an event with its tasks in sequence-number order and
// each task's assignments with their user and department.
func (r *eventRepository) FindByIDWithTasks(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.s_no ASC")
		}).
		Preload("Tasks.Assignments").
		Preload("Tasks.Assignments.User").
		Preload("Tasks.Assignments.Department").
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]EventWithTaskCount, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Preload("CreatedBy").
		Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}

	type taskCount struct {
		EventID uint
		Count   int64
	}
	var counts []taskCount
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("event_id, COUNT(*) AS count").
		Group("event_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	countByEvent := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByEvent[c.EventID] = c.Count
	}

	out := make([]EventWithTaskCount, 0, len(events))
	for _, e := range events {
		out = append(out, EventWithTaskCount{Event: e, TaskCount: countByEvent[e.ID]})
	}
	return out, nil
}
