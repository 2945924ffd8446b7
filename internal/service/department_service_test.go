package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

func TestDepartmentService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		departmentRepo := new(MockDepartmentRepository)
		departmentRepo.On("FindByName", mock.Anything, "Technical").Return(nil, gorm.ErrRecordNotFound)
		departmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Department")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Department).ID = 3
		}).Return(nil)

		svc := NewDepartmentService(departmentRepo)
		department, err := svc.Create(context.Background(), "Technical")

		assert.NoError(t, err)
		assert.Equal(t, uint(3), department.ID)
		assert.Equal(t, "Technical", department.Name)
		departmentRepo.AssertExpectations(t)
	})

	t.Run("name already taken", func(t *testing.T) {
		departmentRepo := new(MockDepartmentRepository)
		departmentRepo.On("FindByName", mock.Anything, "Technical").Return(&model.Department{ID: 3, Name: "Technical"}, nil)

		svc := NewDepartmentService(departmentRepo)
		department, err := svc.Create(context.Background(), "Technical")

		assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
		assert.Nil(t, department)
		departmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDepartmentService_List(t *testing.T) {
	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("List", mock.Anything).Return([]repository.DepartmentWithUserCount{
		{Department: model.Department{ID: 1, Name: "Technical"}, UserCount: 4},
		{Department: model.Department{ID: 2, Name: "Logistics"}, UserCount: 0},
	}, nil)

	svc := NewDepartmentService(departmentRepo)
	items, err := svc.List(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, items, 2) {
		assert.Equal(t, "Technical", items[0].Name)
		assert.Equal(t, int64(4), items[0].UserCount)
		assert.Equal(t, int64(0), items[1].UserCount)
	}
}

func TestDepartmentService_Get(t *testing.T) {
	t.Run("with members", func(t *testing.T) {
		departmentRepo := new(MockDepartmentRepository)
		departmentRepo.On("FindByIDWithUsers", mock.Anything, uint(3)).Return(&model.Department{
			ID:   3,
			Name: "Technical",
			Users: []model.User{
				{ID: 7, Email: "bob@example.com", Name: "Bob", Role: model.RoleDepartmentMember},
			},
		}, nil)

		svc := NewDepartmentService(departmentRepo)
		detail, err := svc.Get(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, "Technical", detail.Name)
		if assert.Len(t, detail.Users, 1) {
			assert.Equal(t, "bob@example.com", detail.Users[0].Email)
		}
	})

	t.Run("not found", func(t *testing.T) {
		departmentRepo := new(MockDepartmentRepository)
		departmentRepo.On("FindByIDWithUsers", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewDepartmentService(departmentRepo)
		detail, err := svc.Get(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
		assert.Nil(t, detail)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	departmentRepo := new(MockDepartmentRepository)
	departmentRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Department{ID: 3, Name: "Technical"}, nil)
	departmentRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Department")).Return(nil)

	svc := NewDepartmentService(departmentRepo)
	department, err := svc.Update(context.Background(), 3, "Engineering")

	assert.NoError(t, err)
	assert.Equal(t, "Engineering", department.Name)
	departmentRepo.AssertExpectations(t)
}

func TestDepartmentService_Remove(t *testing.T) {
	t.Run("deletes existing department", func(t *testing.T) {
		departmentRepo := new(MockDepartmentRepository)
		departmentRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.Department{ID: 3}, nil)
		departmentRepo.On("Delete", mock.Anything, uint(3)).Return(nil)

		svc := NewDepartmentService(departmentRepo)
		assert.NoError(t, svc.Remove(context.Background(), 3))
		departmentRepo.AssertExpectations(t)
	})

	t.Run("unknown department", func(t *testing.T) {
		departmentRepo := new(MockDepartmentRepository)
		departmentRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewDepartmentService(departmentRepo)
		assert.ErrorIs(t, svc.Remove(context.Background(), 99), apperrors.ErrDepartmentNotFound)
		departmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
