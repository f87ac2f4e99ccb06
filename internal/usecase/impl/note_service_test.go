package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/infra/validation"
	mockRepo "planner/internal/mocks/repository"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type noteServiceFixtures struct {
	service  usecase.NoteUsecase
	noteRepo *mockRepo.MockNoteRepository
}

func createTestNoteService(t *testing.T) noteServiceFixtures {
	noteRepo := mockRepo.NewMockNoteRepository(t)

	service := NewNoteService(NoteServiceParams{
		NoteRepo:  noteRepo,
		Validator: validation.New(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return noteServiceFixtures{service: service, noteRepo: noteRepo}
}

func TestNoteService_Create(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	fx.noteRepo.EXPECT().
		Create(ctx, &entity.Note{Text: "call mom", Date: date, CreatedBy: "u1"}).
		Run(func(_ context.Context, note *entity.Note) { note.ID = "n1" }).
		Return(nil)

	note, err := fx.service.Create(ctx, &usecase.NoteInput{Text: "call mom", Date: date, CreatedBy: "u1"})

	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)
}

func TestNoteService_Create_MissingDate(t *testing.T) {
	fx := createTestNoteService(t)

	_, err := fx.service.Create(context.Background(), &usecase.NoteInput{Text: "call mom", CreatedBy: "u1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, `"date" is required`, err.Error())
}

func TestNoteService_Search(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	found := []*entity.Note{{ID: "n1", Text: "Call Mom"}}
	fx.noteRepo.EXPECT().Search(ctx, "text", "mom").Return(found, nil)

	got, err := fx.service.Search(ctx, "text", "mom")
	require.NoError(t, err)
	assert.Equal(t, found, got)

	_, err = fx.service.Search(ctx, "date", "2026")
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedQueryField))
	assert.Equal(t, `"date" cannot be queried`, err.Error())
}

func TestNoteService_UpdateAndDelete_NotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	input := &usecase.NoteInput{Text: "call mom", Date: time.Now(), CreatedBy: "u1"}

	fx.noteRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Note")).Return(repository.ErrNoteNotFound)
	fx.noteRepo.EXPECT().Delete(ctx, "n404").Return(repository.ErrNoteNotFound)

	err := fx.service.Update(ctx, "n404", input)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
	assert.Equal(t, "Cannot update note with id=n404", err.Error())

	err = fx.service.Delete(ctx, "n404")
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
	assert.Equal(t, "Cannot delete note with id=n404", err.Error())
}

func TestNoteService_Get(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	fx.noteRepo.EXPECT().FindByID(ctx, "n1").Return(&entity.Note{ID: "n1"}, nil)
	fx.noteRepo.EXPECT().FindByID(ctx, "n404").Return(nil, repository.ErrNoteNotFound)

	note, err := fx.service.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)

	_, err = fx.service.Get(ctx, "n404")
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}
