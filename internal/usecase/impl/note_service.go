package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/infra/validation"
	"planner/internal/usecase"

	"go.uber.org/fx"
)

type noteService struct {
	noteRepo  repository.NoteRepository
	validator *validation.Validator
	logger    *slog.Logger
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo  repository.NoteRepository
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewNoteService creates a new note service instance
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		noteRepo:  params.NoteRepo,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *noteService) Create(ctx context.Context, input *usecase.NoteInput) (*entity.Note, error) {
	if err := srv.validator.Check(input).Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	note := &entity.Note{
		Text:      input.Text,
		Date:      input.Date,
		CreatedBy: input.CreatedBy,
	}
	if err := srv.noteRepo.Create(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.log(ctx).Debug("Note created", slog.String("noteID", note.ID))

	return note, nil
}

func (srv *noteService) List(ctx context.Context) ([]*entity.Note, error) {
	notes, err := srv.noteRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return notes, nil
}

func (srv *noteService) Get(ctx context.Context, id string) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNoteNotFound)
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	return note, nil
}

func (srv *noteService) Search(ctx context.Context, field, value string) ([]*entity.Note, error) {
	if !slices.Contains(repository.NoteSearchFields, field) {
		return nil, errors.WithStack(unsupportedField(field))
	}

	notes, err := srv.noteRepo.Search(ctx, field, value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search notes")
	}

	return notes, nil
}

func (srv *noteService) Update(ctx context.Context, id string, input *usecase.NoteInput) error {
	if err := srv.validator.Check(input).Err(); err != nil {
		return errors.WithStack(err)
	}

	note := &entity.Note{
		ID:        id,
		Text:      input.Text,
		Date:      input.Date,
		CreatedBy: input.CreatedBy,
	}

	if err := srv.noteRepo.Update(ctx, note); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return errors.WithStack(domainerrors.ErrNoteNotFound.WithMessage("Cannot update note with id=" + id))
		}

		return errors.Wrap(err, "failed to update note")
	}

	return nil
}

func (srv *noteService) Delete(ctx context.Context, id string) error {
	if err := srv.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return errors.WithStack(domainerrors.ErrNoteNotFound.WithMessage("Cannot delete note with id=" + id))
		}

		return errors.Wrap(err, "failed to delete note")
	}

	srv.log(ctx).Debug("Note deleted", slog.String("noteID", id))

	return nil
}
