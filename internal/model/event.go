package model

import "time"

// Event is a top-level unit owning an ordered collection of tasks.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	EventDate   time.Time `json:"event_date" gorm:"not null"`
	CreatedByID uint      `json:"created_by_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	CreatedBy *User  `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Tasks     []Task `json:"tasks,omitempty" gorm:"foreignKey:EventID"`
}
