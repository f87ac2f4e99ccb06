package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table.
type ActivityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"not null"`
	StartTime   string    `gorm:"type:varchar(32);not null"`
	EndTime     string    `gorm:"type:varchar(32);not null"`
	Place       string    `gorm:"type:text"`
	IsRepeating bool      `gorm:"not null"`
	Repeating   string    `gorm:"type:varchar(16);not null"`
	CreatedBy   string    `gorm:"type:varchar(64);index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// NoteModel mirrors the 'notes' table.
type NoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Text      string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"not null"`
	CreatedBy string    `gorm:"type:varchar(64);index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}

// All lists every model the relational backend migrates.
func All() []any {
	return []any{
		&AccountModel{},
		&TaskModel{},
		&ActivityModel{},
		&NoteModel{},
	}
}
