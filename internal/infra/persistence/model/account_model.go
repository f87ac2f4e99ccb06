// Package model holds the GORM persistence models for the relational backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'users' table. The email column carries the unique
// constraint that guards concurrent registrations.
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uniq_users_email;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "users"
}
