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

func TestAssignmentService_Create(t *testing.T) {
	userID := uint(7)
	deptID := uint(3)

	tests := []struct {
		name          string
		input         CreateAssignmentInput
		setupMock     func(*MockAssignmentRepository, *MockTaskRepository, *MockUserRepository, *MockDepartmentRepository)
		expectedError error
	}{
		{
			name:  "unknown task",
			input: CreateAssignmentInput{TaskID: 99, UserID: &userID},
			setupMock: func(a *MockAssignmentRepository, tk *MockTaskRepository, u *MockUserRepository, d *MockDepartmentRepository) {
				tk.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTaskNotFound,
		},
		{
			name:  "no target",
			input: CreateAssignmentInput{TaskID: 4},
			setupMock: func(a *MockAssignmentRepository, tk *MockTaskRepository, u *MockUserRepository, d *MockDepartmentRepository) {
				tk.On("FindByID", mock.Anything, uint(4)).Return(&model.Task{ID: 4}, nil)
			},
			expectedError: apperrors.ErrAssignmentTargetMissing,
		},
		{
			name:  "unknown user",
			input: CreateAssignmentInput{TaskID: 4, UserID: &userID},
			setupMock: func(a *MockAssignmentRepository, tk *MockTaskRepository, u *MockUserRepository, d *MockDepartmentRepository) {
				tk.On("FindByID", mock.Anything, uint(4)).Return(&model.Task{ID: 4}, nil)
				u.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:  "unknown department",
			input: CreateAssignmentInput{TaskID: 4, DepartmentID: &deptID},
			setupMock: func(a *MockAssignmentRepository, tk *MockTaskRepository, u *MockUserRepository, d *MockDepartmentRepository) {
				tk.On("FindByID", mock.Anything, uint(4)).Return(&model.Task{ID: 4}, nil)
				d.On("FindByID", mock.Anything, deptID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrDepartmentNotFound,
		},
		{
			name:  "department target",
			input: CreateAssignmentInput{TaskID: 4, DepartmentID: &deptID},
			setupMock: func(a *MockAssignmentRepository, tk *MockTaskRepository, u *MockUserRepository, d *MockDepartmentRepository) {
				tk.On("FindByID", mock.Anything, uint(4)).Return(&model.Task{ID: 4}, nil)
				d.On("FindByID", mock.Anything, deptID).Return(&model.Department{ID: deptID, Name: "Technical"}, nil)
				a.On("Create", mock.Anything, mock.AnythingOfType("*model.Assignment")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Assignment).ID = 9
				}).Return(nil)
				a.On("FindByIDWithRelations", mock.Anything, uint(9)).Return(&model.Assignment{
					ID:           9,
					TaskID:       4,
					DepartmentID: &deptID,
					Department:   &model.Department{ID: deptID, Name: "Technical"},
					AssignedByID: 1,
					AssignedBy:   &model.User{ID: 1, Name: "Admin"},
				}, nil)
			},
		},
		{
			name:  "user and department together",
			input: CreateAssignmentInput{TaskID: 4, UserID: &userID, DepartmentID: &deptID},
			setupMock: func(a *MockAssignmentRepository, tk *MockTaskRepository, u *MockUserRepository, d *MockDepartmentRepository) {
				tk.On("FindByID", mock.Anything, uint(4)).Return(&model.Task{ID: 4}, nil)
				u.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "Bob"}, nil)
				d.On("FindByID", mock.Anything, deptID).Return(&model.Department{ID: deptID, Name: "Technical"}, nil)
				a.On("Create", mock.Anything, mock.AnythingOfType("*model.Assignment")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Assignment).ID = 10
				}).Return(nil)
				a.On("FindByIDWithRelations", mock.Anything, uint(10)).Return(&model.Assignment{
					ID:           10,
					TaskID:       4,
					UserID:       &userID,
					DepartmentID: &deptID,
					User:         &model.User{ID: userID, Name: "Bob"},
					Department:   &model.Department{ID: deptID, Name: "Technical"},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignmentRepo := new(MockAssignmentRepository)
			taskRepo := new(MockTaskRepository)
			userRepo := new(MockUserRepository)
			departmentRepo := new(MockDepartmentRepository)
			tt.setupMock(assignmentRepo, taskRepo, userRepo, departmentRepo)

			svc := NewAssignmentService(assignmentRepo, taskRepo, userRepo, departmentRepo)
			view, err := svc.Create(context.Background(), tt.input, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, view)
				assignmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				if tt.input.DepartmentID != nil && assert.NotNil(t, view.Department) {
					assert.Equal(t, "Technical", view.Department.Name)
				}
				if tt.input.UserID != nil && assert.NotNil(t, view.User) {
					assert.Equal(t, "Bob", view.User.Name)
				}
			}

			assignmentRepo.AssertExpectations(t)
			taskRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
			departmentRepo.AssertExpectations(t)
		})
	}
}

func TestAssignmentService_FindByTask(t *testing.T) {
	userID := uint(7)

	assignmentRepo := new(MockAssignmentRepository)
	assignmentRepo.On("FindByTask", mock.Anything, uint(4)).Return([]model.Assignment{
		{ID: 9, TaskID: 4, UserID: &userID, User: &model.User{ID: userID, Name: "Bob", Email: "bob@example.com"}},
	}, nil)

	svc := NewAssignmentService(assignmentRepo, new(MockTaskRepository), new(MockUserRepository), new(MockDepartmentRepository))
	views, err := svc.FindByTask(context.Background(), 4)

	assert.NoError(t, err)
	if assert.Len(t, views, 1) {
		assert.Equal(t, uint(9), views[0].ID)
		if assert.NotNil(t, views[0].User) {
			assert.Equal(t, "bob@example.com", views[0].User.Email)
		}
		assert.Nil(t, views[0].Department)
	}
}

// Listing assignments never checks the task itself, so an absent task simply
// yields an empty collection.
func TestAssignmentService_FindByTask_AbsentTask(t *testing.T) {
	assignmentRepo := new(MockAssignmentRepository)
	assignmentRepo.On("FindByTask", mock.Anything, uint(99)).Return([]model.Assignment{}, nil)

	taskRepo := new(MockTaskRepository)
	svc := NewAssignmentService(assignmentRepo, taskRepo, new(MockUserRepository), new(MockDepartmentRepository))
	views, err := svc.FindByTask(context.Background(), 99)

	assert.NoError(t, err)
	assert.Empty(t, views)
	taskRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAssignmentService_Remove(t *testing.T) {
	t.Run("deletes existing assignment", func(t *testing.T) {
		assignmentRepo := new(MockAssignmentRepository)
		assignmentRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.Assignment{ID: 9}, nil)
		assignmentRepo.On("Delete", mock.Anything, uint(9)).Return(nil)

		svc := NewAssignmentService(assignmentRepo, new(MockTaskRepository), new(MockUserRepository), new(MockDepartmentRepository))
		err := svc.Remove(context.Background(), 9)

		assert.NoError(t, err)
		assignmentRepo.AssertExpectations(t)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		assignmentRepo := new(MockAssignmentRepository)
		assignmentRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAssignmentService(assignmentRepo, new(MockTaskRepository), new(MockUserRepository), new(MockDepartmentRepository))
		err := svc.Remove(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrAssignmentNotFound)
		assignmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
