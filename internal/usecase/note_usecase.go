package usecase

import (
	"context"
	"time"

	"planner/internal/domain/entity"
)

// NoteInput defines a note for creation and full replacement.
type NoteInput struct {
	Text      string    `json:"text" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	CreatedBy string    `json:"_createdBy" validate:"required"`
}

// NoteUsecase manages dated notes.
type NoteUsecase interface {
	Create(ctx context.Context, input *NoteInput) (*entity.Note, error)
	List(ctx context.Context) ([]*entity.Note, error)
	Get(ctx context.Context, id string) (*entity.Note, error)
	Search(ctx context.Context, field, value string) ([]*entity.Note, error)
	Update(ctx context.Context, id string, input *NoteInput) error
	Delete(ctx context.Context, id string) error
}
