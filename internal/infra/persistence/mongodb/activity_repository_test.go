package mongodb

import (
	"context"
	"testing"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestActivityRepository_Search(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("escapes value and ignores case", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "planner.activities", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "title", Value: "Yoga (beginner)"},
			{Key: "date", Value: primitive.NewDateTimeFromTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))},
			{Key: "startTime", Value: "08:00"},
			{Key: "endTime", Value: "09:00"},
			{Key: "repeating", Value: "Weekly"},
			{Key: "isRepeating", Value: true},
			{Key: "_createdBy", Value: "user-1"},
		}))

		activities, err := repo.Search(context.Background(), "title", "yoga (")
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, entity.RepeatingWeekly, activities[0].Repeating)
		assert.Equal(t, oid.Hex(), activities[0].ID)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		pattern, options := started.Command.Lookup("filter", "title").Regex()
		assert.Equal(t, `yoga \(`, pattern)
		assert.Equal(t, "i", options)
	})

	mt.Run("unsupported field", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)

		_, err := repo.Search(context.Background(), "password", "x")
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedQueryField)
	})
}

func TestActivityRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		err := repo.Update(context.Background(), &entity.Activity{
			ID:        primitive.NewObjectID().Hex(),
			Title:     "Swim",
			Repeating: entity.RepeatingNone,
		})
		assert.NoError(t, err)
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.Update(context.Background(), &entity.Activity{ID: primitive.NewObjectID().Hex()})
		assert.ErrorIs(t, err, repository.ErrActivityNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewActivityRepository(mt.DB)

		err := repo.Update(context.Background(), &entity.Activity{ID: "nope"})
		assert.ErrorIs(t, err, repository.ErrActivityNotFound)
	})
}

func TestNoteRepository_CreateAndList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewNoteRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		note := &entity.Note{Text: "Call mom", Date: time.Now(), CreatedBy: "user-1"}
		require.NoError(t, repo.Create(context.Background(), note))
		assert.NotEmpty(t, note.ID)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewNoteRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "planner.notes", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "text", Value: "one"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "text", Value: "two"}},
		))

		notes, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "two", notes[1].Text)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewNoteRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, repository.ErrNoteNotFound)
	})
}
