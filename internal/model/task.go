package model

import "time"

// Task is a unit of work under an event, created exclusively through CSV import.
//
// DepartmentName is the free-text label captured from the imported file. It is
// not a relational link to Department; assignments carry the relational link.
type Task struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	EventID        uint      `json:"event_id" gorm:"not null;index"`
	SNo            int       `json:"s_no" gorm:"not null;index"` // sequence number taken verbatim from import
	TaskName       string    `json:"task_name" gorm:"size:255;not null"`
	Description    string    `json:"description" gorm:"type:text;not null"`
	DepartmentName string    `json:"department_name" gorm:"size:255;not null"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Event       *Event       `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Assignments []Assignment `json:"assignments,omitempty" gorm:"foreignKey:TaskID"`
}
