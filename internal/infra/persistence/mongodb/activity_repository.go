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

type activityRepository struct {
	coll *mongo.Collection
}

// NewActivityRepository creates a new activity repository backed by the activities collection.
func NewActivityRepository(db *mongo.Database) repository.ActivityRepository {
	return &activityRepository{coll: db.Collection(activitiesCollection)}
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	doc := newActivityDocument(activity)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = doc.ID.Hex()

	return nil
}

func (repo *activityRepository) List(ctx context.Context) ([]*entity.Activity, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *activityRepository) Search(ctx context.Context, field, value string) ([]*entity.Activity, error) {
	if err := checkSearchField(field, repository.ActivitySearchFields); err != nil {
		return nil, err
	}

	return repo.find(ctx, containsFilter(field, value))
}

func (repo *activityRepository) find(ctx context.Context, filter bson.M) ([]*entity.Activity, error) {
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find activities")
	}

	var docs []activityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode activities")
	}

	activities := make([]*entity.Activity, 0, len(docs))
	for i := range docs {
		activities = append(activities, docs[i].toEntity())
	}

	return activities, nil
}

func (repo *activityRepository) FindByID(ctx context.Context, id string) (*entity.Activity, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrActivityNotFound
	}

	var doc activityDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find activity")
	}

	return doc.toEntity(), nil
}

func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	oid, ok := parseID(activity.ID)
	if !ok {
		return repository.ErrActivityNotFound
	}

	doc := newActivityDocument(activity)
	res, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update activity")
	}
	if res.MatchedCount == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

func (repo *activityRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return repository.ErrActivityNotFound
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete activity")
	}
	if res.DeletedCount == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}
