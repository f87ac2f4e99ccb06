package postgres

import (
	"context"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository returns the GORM-backed note repository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate note id")
	}

	noteM := fromNoteDomain(note)
	noteM.ID = id

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = id.String()

	return nil
}

func (repo *noteRepository) List(ctx context.Context) ([]*entity.Note, error) {
	return repo.find(repo.db.WithContext(ctx))
}

func (repo *noteRepository) Search(ctx context.Context, field, value string) ([]*entity.Note, error) {
	query, arg, err := containsClause(field, value, repository.NoteSearchFields)
	if err != nil {
		return nil, err
	}

	return repo.find(repo.db.WithContext(ctx).Where(query, arg))
}

func (repo *noteRepository) find(tx *gorm.DB) ([]*entity.Note, error) {
	var noteMs []*model.NoteModel
	if err := tx.Find(&noteMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notes")
	}

	notes := make([]*entity.Note, 0, len(noteMs))
	for _, noteM := range noteMs {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, nil
}

func (repo *noteRepository) FindByID(ctx context.Context, id string) (*entity.Note, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrNoteNotFound
	}

	var noteM model.NoteModel
	if err := repo.db.WithContext(ctx).Where("id = ?", uid).First(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find note")
	}

	return toNoteDomain(&noteM), nil
}

func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	uid, ok := parseID(note.ID)
	if !ok {
		return repository.ErrNoteNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ?", uid).
		Updates(map[string]any{
			"text":       note.Text,
			"date":       note.Date,
			"created_by": note.CreatedBy,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

func (repo *noteRepository) Delete(ctx context.Context, id string) error {
	uid, ok := parseID(id)
	if !ok {
		return repository.ErrNoteNotFound
	}

	result := repo.db.WithContext(ctx).Where("id = ?", uid).Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}
