package mongodb

import (
	"context"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type noteRepository struct {
	coll *mongo.Collection
}

// NewNoteRepository creates a new note repository backed by the notes collection.
func NewNoteRepository(db *mongo.Database) repository.NoteRepository {
	return &noteRepository{coll: db.Collection(notesCollection)}
}

func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	doc := newNoteDocument(note)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = doc.ID.Hex()

	return nil
}

func (repo *noteRepository) List(ctx context.Context) ([]*entity.Note, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *noteRepository) Search(ctx context.Context, field, value string) ([]*entity.Note, error) {
	if err := checkSearchField(field, repository.NoteSearchFields); err != nil {
		return nil, err
	}

	return repo.find(ctx, containsFilter(field, value))
}

func (repo *noteRepository) find(ctx context.Context, filter bson.M) ([]*entity.Note, error) {
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notes")
	}

	var docs []noteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode notes")
	}

	notes := make([]*entity.Note, 0, len(docs))
	for i := range docs {
		notes = append(notes, docs[i].toEntity())
	}

	return notes, nil
}

func (repo *noteRepository) FindByID(ctx context.Context, id string) (*entity.Note, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrNoteNotFound
	}

	var doc noteDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find note")
	}

	return doc.toEntity(), nil
}

func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	oid, ok := parseID(note.ID)
	if !ok {
		return repository.ErrNoteNotFound
	}

	doc := newNoteDocument(note)
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update note")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

func (repo *noteRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return repository.ErrNoteNotFound
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete note")
	}
	if res.DeletedCount == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}
