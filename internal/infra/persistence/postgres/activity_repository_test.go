package postgres

import (
	"context"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var activityColumns = []string{"id", "title", "description", "date", "start_time", "end_time", "place", "is_repeating", "repeating", "created_by"}

func TestActivityRepository_Search(t *testing.T) {
	t.Run("escapes like wildcards", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewActivityRepository(db)
		date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT \* FROM "activities" WHERE start_time ILIKE \$1`).
			WithArgs(`%50\%\_off%`).
			WillReturnRows(sqlmock.NewRows(activityColumns).
				AddRow(uuid.NewString(), "Sale", "", date, "50%_off", "10:00", "", false, "None", "user-1"))

		activities, err := repo.Search(context.Background(), "startTime", "50%_off")
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, entity.RepeatingNone, activities[0].Repeating)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("field outside whitelist", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewActivityRepository(db)

		_, err := repo.Search(context.Background(), "text", "x")
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedQueryField)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestActivityRepository_Update(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewActivityRepository(db)

		mock.ExpectExec(`UPDATE "activities" SET .* WHERE id = \$\d+`).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), &entity.Activity{ID: uuid.NewString(), Title: "Swim", Repeating: entity.RepeatingDaily})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewActivityRepository(db)

		mock.ExpectExec(`UPDATE "activities" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &entity.Activity{ID: uuid.NewString()})
		assert.ErrorIs(t, err, repository.ErrActivityNotFound)
	})
}

func TestNoteRepository(t *testing.T) {
	t.Run("search text", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "notes" WHERE text ILIKE \$1`).
			WithArgs("%mom%").
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "date", "created_by"}).
				AddRow(uuid.NewString(), "Call Mom", time.Now(), "user-1"))

		notes, err := repo.Search(context.Background(), "text", "mom")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Call Mom", notes[0].Text)
	})

	t.Run("find missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "notes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "date", "created_by"}))

		_, err := repo.FindByID(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, repository.ErrNoteNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db)

		mock.ExpectExec(`DELETE FROM "notes" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), uuid.NewString()))
	})
}
