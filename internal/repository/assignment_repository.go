package repository

import (
	"context"

	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// AssignmentRepository defines assignment persistence operations.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Assignment, error)
	FindByIDWithRelations(ctx context.Context, id uint) (*model.Assignment, error)
	FindByTask(ctx context.Context, taskID uint) ([]model.Assignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository builds a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Assignment{}, id).Error
}

func (r *assignmentRepository) FindByID(ctx context.Context, id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.db.WithContext(ctx).First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Task").
		Preload("User").
		Preload("Department").
		First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindByTask(ctx context.Context, taskID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Department").
		Preload("AssignedBy").
		Where("task_id = ?", taskID).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
