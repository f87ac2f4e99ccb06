package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel mirrors the 'tasks' table.
type TaskModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:text;not null"`
	IsCompleted  bool      `gorm:"not null"`
	HighPriority bool      `gorm:"not null"`
	CreatedBy    string    `gorm:"type:varchar(64);index:idx_tasks_created_by_created_at,priority:1;not null"`
	CreatedAt    time.Time `gorm:"index:idx_tasks_created_by_created_at,priority:2"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
