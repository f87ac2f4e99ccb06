package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrTaskNotFound is returned when no task matches the given ID.
var ErrTaskNotFound = errors.New("task not found")

// TaskFilter narrows a task listing. Empty fields match everything.
type TaskFilter struct {
	CreatedBy string
}

// TaskRepository defines the persistence operations for tasks.
type TaskRepository interface {
	// Create persists a new task and sets its ID and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// List returns the tasks matching filter, newest first.
	List(ctx context.Context, filter TaskFilter) ([]*entity.Task, error)

	// FindByID retrieves a single task.
	FindByID(ctx context.Context, id string) (*entity.Task, error)

	// Update overwrites the mutable fields of an existing task and returns the stored result.
	Update(ctx context.Context, task *entity.Task) (*entity.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id string) error
}
