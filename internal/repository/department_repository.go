package repository

import (
	"context"

	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// DepartmentWithUserCount pairs a department with its member count for listings.
type DepartmentWithUserCount struct {
	model.Department
	UserCount int64 `json:"user_count"`
}

// DepartmentRepository defines department persistence operations.
type DepartmentRepository interface {
	Create(ctx context.Context, department *model.Department) error
	Update(ctx context.Context, department *model.Department) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Department, error)
	FindByIDWithUsers(ctx context.Context, id uint) (*model.Department, error)
	FindByName(ctx context.Context, name string) (*model.Department, error)
	List(ctx context.Context) ([]DepartmentWithUserCount, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository builds a GORM-backed repository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *departmentRepository) Update(ctx context.Context, department *model.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

func (r *departmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Department{}, id).Error
}

func (r *departmentRepository) FindByID(ctx context.Context, id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByIDWithUsers(ctx context.Context, id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).Preload("Users").First(&department, id).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByName(ctx context.Context, name string) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]DepartmentWithUserCount, error) {
	var departments []DepartmentWithUserCount
	err := r.db.WithContext(ctx).Model(&model.Department{}).
		Select("departments.*, COUNT(users.id) AS user_count").
		Joins("LEFT JOIN users ON users.department_id = departments.id").
		Group("departments.id").
		Scan(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}
