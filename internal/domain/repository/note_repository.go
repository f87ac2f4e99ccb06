package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrNoteNotFound is returned when no note matches the given ID.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the persistence operations for notes.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	List(ctx context.Context) ([]*entity.Note, error)
	FindByID(ctx context.Context, id string) (*entity.Note, error)

	// Search returns notes whose field contains value, ignoring case.
	// field is one of the names in NoteSearchFields.
	Search(ctx context.Context, field, value string) ([]*entity.Note, error)

	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id string) error
}

// NoteSearchFields lists the JSON field names a note can be searched by.
var NoteSearchFields = []string{"text", "_createdBy"}
