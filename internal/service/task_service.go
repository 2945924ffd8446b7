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

// UploadResult reports the outcome of a successful bulk import.
type UploadResult struct {
	Success      bool   `json:"success"`
	TasksCreated int    `json:"tasksCreated"`
	Message      string `json:"message"`
}

// EventSummary identifies a task's owning event for display.
type EventSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
}

// TaskView is a task with its assignment summaries.
type TaskView struct {
	ID             uint             `json:"id"`
	EventID        uint             `json:"event_id"`
	SNo            int              `json:"s_no"`
	TaskName       string           `json:"task_name"`
	Description    string           `json:"description"`
	DepartmentName string           `json:"department_name"`
	CreatedAt      time.Time        `json:"created_at"`
	Event          *EventSummary    `json:"event,omitempty"`
	Assignments    []AssignmentView `json:"assignments"`
}

// TaskService handles CSV import and task retrieval.
type TaskService interface {
	// UploadCSV parses and validates the uploaded bytes, then persists every
	// row as a task of the event in one atomic unit of work.
	UploadCSV(ctx context.Context, eventID uint, data []byte) (*UploadResult, error)
	GetEventTasks(ctx context.Context, eventID uint) ([]TaskView, error)
	// GetMyTasks returns tasks with an assignment addressed to the user or,
	// when departmentID is non-nil, to their department.
	GetMyTasks(ctx context.Context, userID uint, departmentID *uint) ([]TaskView, error)
	GetTask(ctx context.Context, id uint) (*TaskView, error)
}

type taskService struct {
	eventRepo repository.EventRepository
	taskRepo  repository.TaskRepository
	parser    *CSVParser
}

// NewTaskService creates a new task service.
func NewTaskService(eventRepo repository.EventRepository, taskRepo repository.TaskRepository, parser *CSVParser) TaskService {
	return &taskService{
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
		parser:    parser,
	}
}

func (s *taskService) UploadCSV(ctx context.Context, eventID uint, data []byte) (*UploadResult, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	rows, err := s.parser.Parse(data)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, model.Task{
			EventID:        eventID,
			SNo:            row.SNo,
			TaskName:       row.TaskName,
			Description:    row.Description,
			DepartmentName: row.DepartmentName,
		})
	}

	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		return nil, fmt.Errorf("create tasks: %w", err)
	}

	return &UploadResult{
		Success:      true,
		TasksCreated: len(tasks),
		Message:      fmt.Sprintf("Successfully created %d tasks", len(tasks)),
	}, nil
}

func (s *taskService) GetEventTasks(ctx context.Context, eventID uint) ([]TaskView, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	tasks, err := s.taskRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return taskViews(tasks, false), nil
}

func (s *taskService) GetMyTasks(ctx context.Context, userID uint, departmentID *uint) ([]TaskView, error) {
	tasks, err := s.taskRepo.FindAssignedTo(ctx, userID, departmentID)
	if err != nil {
		return nil, err
	}
	return taskViews(tasks, true), nil
}

func (s *taskService) GetTask(ctx context.Context, id uint) (*TaskView, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	view := taskView(task, true)
	return &view, nil
}

func taskView(t *model.Task, withEvent bool) TaskView {
	view := TaskView{
		ID:             t.ID,
		EventID:        t.EventID,
		SNo:            t.SNo,
		TaskName:       t.TaskName,
		Description:    t.Description,
		DepartmentName: t.DepartmentName,
		CreatedAt:      t.CreatedAt,
		Assignments:    assignmentViews(t.Assignments),
	}
	if withEvent && t.Event != nil {
		view.Event = &EventSummary{
			ID:        t.Event.ID,
			Name:      t.Event.Name,
			EventDate: t.Event.EventDate,
		}
	}
	return view
}

func taskViews(tasks []model.Task, withEvent bool) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for i := range tasks {
		views = append(views, taskView(&tasks[i], withEvent))
	}
	return views
}
