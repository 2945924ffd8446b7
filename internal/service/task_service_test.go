package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
)

const uploadCSV = `S.no,Task,Description,Name,Department
1,Setup stage,Arrange the main stage,Alice,Logistics
2,Test sound system,Check all microphones,Bob,Technical
3,Prepare badges,Print attendee badges,,Operations
`

func TestTaskService_UploadCSV(t *testing.T) {
	t.Run("persists every row for the event", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		taskRepo := new(MockTaskRepository)
		eventRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Event{ID: 5, Name: "Annual Meetup"}, nil)

		var created []model.Task
		taskRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]model.Task")).Run(func(args mock.Arguments) {
			created = args.Get(1).([]model.Task)
		}).Return(nil)

		svc := NewTaskService(eventRepo, taskRepo, NewCSVParser())
		result, err := svc.UploadCSV(context.Background(), 5, []byte(uploadCSV))

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 3, result.TasksCreated)
		assert.Equal(t, "Successfully created 3 tasks", result.Message)

		if assert.Len(t, created, 3) {
			assert.Equal(t, uint(5), created[0].EventID)
			assert.Equal(t, 1, created[0].SNo)
			assert.Equal(t, "Setup stage", created[0].TaskName)
			assert.Equal(t, "Logistics", created[0].DepartmentName)
			assert.Equal(t, "Prepare badges", created[2].TaskName)
		}

		eventRepo.AssertExpectations(t)
		taskRepo.AssertExpectations(t)
	})

	t.Run("unknown event", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		taskRepo := new(MockTaskRepository)
		eventRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(eventRepo, taskRepo, NewCSVParser())
		result, err := svc.UploadCSV(context.Background(), 99, []byte(uploadCSV))

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.Nil(t, result)
		taskRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("invalid rows create nothing", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		taskRepo := new(MockTaskRepository)
		eventRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Event{ID: 5}, nil)

		badCSV := "S.no,Task,Description,Name,Department\n" +
			"1,Setup stage,Arrange the main stage,Alice,Logistics\n" +
			"oops,Test sound system,Check all microphones,Bob,Technical\n"

		svc := NewTaskService(eventRepo, taskRepo, NewCSVParser())
		result, err := svc.UploadCSV(context.Background(), 5, []byte(badCSV))

		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Nil(t, result)
		taskRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("empty file creates nothing", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		taskRepo := new(MockTaskRepository)
		eventRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Event{ID: 5}, nil)

		svc := NewTaskService(eventRepo, taskRepo, NewCSVParser())
		result, err := svc.UploadCSV(context.Background(), 5, []byte("S.no,Task,Description,Name,Department\n"))

		assert.ErrorIs(t, err, apperrors.ErrEmptyCSV)
		assert.Nil(t, result)
		taskRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}

func TestTaskService_GetEventTasks(t *testing.T) {
	t.Run("returns tasks in serial order", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		taskRepo := new(MockTaskRepository)
		eventRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Event{ID: 5}, nil)
		taskRepo.On("FindByEvent", mock.Anything, uint(5)).Return([]model.Task{
			{ID: 1, EventID: 5, SNo: 1, TaskName: "Setup stage"},
			{ID: 2, EventID: 5, SNo: 2, TaskName: "Test sound system"},
		}, nil)

		svc := NewTaskService(eventRepo, taskRepo, NewCSVParser())
		tasks, err := svc.GetEventTasks(context.Background(), 5)

		assert.NoError(t, err)
		if assert.Len(t, tasks, 2) {
			assert.Equal(t, "Setup stage", tasks[0].TaskName)
			assert.NotNil(t, tasks[0].Assignments)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		eventRepo := new(MockEventRepository)
		taskRepo := new(MockTaskRepository)
		eventRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(eventRepo, taskRepo, NewCSVParser())
		tasks, err := svc.GetEventTasks(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.Nil(t, tasks)
	})
}

func TestTaskService_GetMyTasks(t *testing.T) {
	deptID := uint(3)

	taskRepo := new(MockTaskRepository)
	taskRepo.On("FindAssignedTo", mock.Anything, uint(7), &deptID).Return([]model.Task{
		{
			ID:       4,
			EventID:  5,
			SNo:      2,
			TaskName: "Test sound system",
			Event:    &model.Event{ID: 5, Name: "Annual Meetup"},
		},
	}, nil)

	svc := NewTaskService(new(MockEventRepository), taskRepo, NewCSVParser())
	tasks, err := svc.GetMyTasks(context.Background(), 7, &deptID)

	assert.NoError(t, err)
	if assert.Len(t, tasks, 1) {
		assert.Equal(t, "Test sound system", tasks[0].TaskName)
		if assert.NotNil(t, tasks[0].Event) {
			assert.Equal(t, "Annual Meetup", tasks[0].Event.Name)
		}
	}
}

func TestTaskService_GetTask(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		taskRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.Task{
			ID:       4,
			EventID:  5,
			TaskName: "Test sound system",
			Assignments: []model.Assignment{
				{ID: 9, TaskID: 4, User: &model.User{ID: 7, Name: "Bob"}},
			},
		}, nil)

		svc := NewTaskService(new(MockEventRepository), taskRepo, NewCSVParser())
		task, err := svc.GetTask(context.Background(), 4)

		assert.NoError(t, err)
		assert.Equal(t, "Test sound system", task.TaskName)
		if assert.Len(t, task.Assignments, 1) {
			assert.Equal(t, "Bob", task.Assignments[0].User.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		taskRepo := new(MockTaskRepository)
		taskRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(new(MockEventRepository), taskRepo, NewCSVParser())
		task, err := svc.GetTask(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
		assert.Nil(t, task)
	})
}
