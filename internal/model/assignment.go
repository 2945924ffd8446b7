package model

import "time"

// Assignment ties a task to a responsible user or department and records the
// administrator who created it. At least one of UserID and DepartmentID must be
// present; both may be set at once.
type Assignment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TaskID       uint      `json:"task_id" gorm:"not null;index"`
	UserID       *uint     `json:"user_id,omitempty" gorm:"index"`
	DepartmentID *uint     `json:"department_id,omitempty" gorm:"index"`
	AssignedByID uint      `json:"assigned_by_id" gorm:"not null;index"`
	AssignedAt   time.Time `json:"assigned_at" gorm:"autoCreateTime"`

	// Relations
	Task       *Task       `json:"task,omitempty" gorm:"foreignKey:TaskID"`
	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	AssignedBy *User       `json:"assigned_by,omitempty" gorm:"foreignKey:AssignedByID"`
}
