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

// AssignmentView is an assignment composed with lightweight summaries of its
// task, targets, and assigner for direct display.
type AssignmentView struct {
	ID         uint               `json:"id"`
	AssignedAt time.Time          `json:"assigned_at"`
	Task       *TaskSummary       `json:"task,omitempty"`
	User       *UserSummary       `json:"user"`
	Department *DepartmentSummary `json:"department"`
	AssignedBy *UserSummary       `json:"assigned_by,omitempty"`
}

// CreateAssignmentInput carries an assignment request. At least one of UserID
// and DepartmentID must be set; both at once is allowed.
type CreateAssignmentInput struct {
	TaskID       uint
	UserID       *uint
	DepartmentID *uint
}

// AssignmentService cross-validates task/user/department references before
// recording who is responsible for what.
type AssignmentService interface {
	Create(ctx context.Context, input CreateAssignmentInput, assignedByID uint) (*AssignmentView, error)
	// FindByTask returns all assignments for a task. No existence check is made
	// on the task itself; an absent task yields an empty collection.
	FindByTask(ctx context.Context, taskID uint) ([]AssignmentView, error)
	Remove(ctx context.Context, id uint) error
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	taskRepo       repository.TaskRepository
	userRepo       repository.UserRepository
	departmentRepo repository.DepartmentRepository
}

// NewAssignmentService creates a new assignment service.
func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	departmentRepo repository.DepartmentRepository,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		taskRepo:       taskRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *assignmentService) Create(ctx context.Context, input CreateAssignmentInput, assignedByID uint) (*AssignmentView, error) {
	if _, err := s.taskRepo.FindByID(ctx, input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}

	if input.UserID == nil && input.DepartmentID == nil {
		return nil, apperrors.ErrAssignmentTargetMissing
	}

	if input.UserID != nil {
		if _, err := s.userRepo.FindByID(ctx, *input.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	if input.DepartmentID != nil {
		if _, err := s.departmentRepo.FindByID(ctx, *input.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("find department: %w", err)
		}
	}

	assignment := &model.Assignment{
		TaskID:       input.TaskID,
		UserID:       input.UserID,
		DepartmentID: input.DepartmentID,
		AssignedByID: assignedByID,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	created, err := s.assignmentRepo.FindByIDWithRelations(ctx, assignment.ID)
	if err != nil {
		return nil, fmt.Errorf("load created assignment: %w", err)
	}
	view := assignmentView(created)
	return &view, nil
}

func (s *assignmentService) FindByTask(ctx context.Context, taskID uint) ([]AssignmentView, error) {
	assignments, err := s.assignmentRepo.FindByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return assignmentViews(assignments), nil
}

func (s *assignmentService) Remove(ctx context.Context, id uint) error {
	if _, err := s.assignmentRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("find assignment: %w", err)
	}
	return s.assignmentRepo.Delete(ctx, id)
}

func assignmentView(a *model.Assignment) AssignmentView {
	return AssignmentView{
		ID:         a.ID,
		AssignedAt: a.AssignedAt,
		Task:       taskSummary(a.Task),
		User:       userSummary(a.User),
		Department: departmentSummary(a.Department),
		AssignedBy: userSummary(a.AssignedBy),
	}
}

func assignmentViews(assignments []model.Assignment) []AssignmentView {
	views := make([]AssignmentView, 0, len(assignments))
	for i := range assignments {
		views = append(views, assignmentView(&assignments[i]))
	}
	return views
}
