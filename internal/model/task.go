package model

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"size:1024" json:"description"`
	Completed   bool           `gorm:"not null;default:false" json:"completed"`
	DayToDo     time.Time      `gorm:"not null" json:"day_to_do"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	PriorityID  uint           `gorm:"index;not null" json:"priority_id"`
	Priority    Priority       `gorm:"foreignKey:PriorityID" json:"priority"`
}
