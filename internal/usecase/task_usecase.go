package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// CreateTaskInput defines a new task. Both flags default to false.
type CreateTaskInput struct {
	Title        string `json:"title" validate:"required,max=255"`
	IsCompleted  bool   `json:"isCompleted"`
	HighPriority bool   `json:"highPriority"`
	CreatedBy    string `json:"_createdBy" validate:"required"`
}

// UpdateTaskInput carries the mutable fields of a task.
type UpdateTaskInput struct {
	Title        string `json:"title" validate:"required,max=255"`
	IsCompleted  bool   `json:"isCompleted"`
	HighPriority bool   `json:"highPriority"`
}

// TaskUsecase manages to-do items.
type TaskUsecase interface {
	Create(ctx context.Context, input *CreateTaskInput) (*entity.Task, error)
	// List returns tasks newest first, limited to userID when it is not empty.
	List(ctx context.Context, userID string) ([]*entity.Task, error)
	Get(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, id string, input *UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, id string) error
}
