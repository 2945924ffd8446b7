package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

// DepartmentListItem is one entry of the department listing.
type DepartmentListItem struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	UserCount int64  `json:"user_count"`
}

// DepartmentDetail is a department with its member summaries.
type DepartmentDetail struct {
	ID    uint               `json:"id"`
	Name  string             `json:"name"`
	Users []DepartmentMember `json:"users"`
}

// DepartmentMember summarizes a department member.
type DepartmentMember struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// DepartmentService handles department CRUD.
type DepartmentService interface {
	Create(ctx context.Context, name string) (*model.Department, error)
	List(ctx context.Context) ([]DepartmentListItem, error)
	Get(ctx context.Context, id uint) (*DepartmentDetail, error)
	Update(ctx context.Context, id uint, name string) (*model.Department, error)
	Remove(ctx context.Context, id uint) error
}

type departmentService struct {
	departmentRepo repository.DepartmentRepository
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(departmentRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{departmentRepo: departmentRepo}
}

func (s *departmentService) Create(ctx context.Context, name string) (*model.Department, error) {
	existing, err := s.departmentRepo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check department existence: %w", err)
	}

	department := &model.Department{Name: name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return department, nil
}

func (s *departmentService) List(ctx context.Context) ([]DepartmentListItem, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]DepartmentListItem, 0, len(departments))
	for _, d := range departments {
		items = append(items, DepartmentListItem{
			ID:        d.ID,
			Name:      d.Name,
			UserCount: d.UserCount,
		})
	}
	return items, nil
}

func (s *departmentService) Get(ctx context.Context, id uint) (*DepartmentDetail, error) {
	department, err := s.departmentRepo.FindByIDWithUsers(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}

	members := make([]DepartmentMember, 0, len(department.Users))
	for _, u := range department.Users {
		members = append(members, DepartmentMember{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role,
		})
	}

	return &DepartmentDetail{
		ID:    department.ID,
		Name:  department.Name,
		Users: members,
	}, nil
}

func (s *departmentService) Update(ctx context.Context, id uint, name string) (*model.Department, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}

	department.Name = name
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}
	return department, nil
}

func (s *departmentService) Remove(ctx context.Context, id uint) error {
	if _, err := s.departmentRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return err
	}
	return s.departmentRepo.Delete(ctx, id)
}
