package entity

import "time"

// Task is a to-do item owned by an account.
type Task struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	IsCompleted  bool      `json:"isCompleted"`
	HighPriority bool      `json:"highPriority"`
	CreatedBy    string    `json:"_createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
