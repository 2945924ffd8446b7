package model

import "time"

// Department groups users and can be the target of task assignments.
type Department struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Users       []User       `json:"users,omitempty" gorm:"foreignKey:DepartmentID"`
	Assignments []Assignment `json:"assignments,omitempty" gorm:"foreignKey:DepartmentID"`
}
