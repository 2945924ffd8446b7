package repository

import (
	"context"

	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// TaskRepository defines task persistence operations.
type TaskRepository interface {
	// CreateBatch inserts all tasks inside one transaction: either every row
	// becomes a record or none do.
	CreateBatch(ctx context.Context, tasks []model.Task) error
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	FindByEvent(ctx context.Context, eventID uint) ([]model.Task, error)
	// FindAssignedTo returns tasks with at least one assignment targeting the
	// user or, when departmentID is non-nil, their department. Preloaded
	// assignments are restricted to the matching ones.
	FindAssignedTo(ctx context.Context, userID uint, departmentID *uint) ([]model.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) CreateBatch(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range tasks {
			if err := tx.Create(&tasks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *taskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Assignments").
		Preload("Assignments.User").
		Preload("Assignments.Department").
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) FindByEvent(ctx context.Context, eventID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Assignments").
		Preload("Assignments.User").
		Preload("Assignments.Department").
		Where("event_id = ?", eventID).
		Order("s_no ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindAssignedTo(ctx context.Context, userID uint, departmentID *uint) ([]model.Task, error) {
	match := r.db.Where("assignments.user_id = ?", userID)
	if departmentID != nil {
		match = match.Or("assignments.department_id = ?", *departmentID)
	}

	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			q := db.Where("user_id = ?", userID)
			if departmentID != nil {
				q = q.Or("department_id = ?", *departmentID)
			}
			return q
		}).
		Preload("Assignments.User").
		Preload("Assignments.Department").
		Joins("JOIN assignments ON assignments.task_id = tasks.id").
		Where(match).
		Group("tasks.id").
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
