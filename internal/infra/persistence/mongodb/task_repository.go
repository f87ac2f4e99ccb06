package mongodb

import (
	"context"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type taskRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewTaskRepository creates a new task repository backed by the tasks collection.
func NewTaskRepository(db *mongo.Database) repository.TaskRepository {
	return &taskRepository{
		coll: db.Collection(tasksCollection),
		now:  time.Now,
	}
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	now := repo.now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	doc := newTaskDocument(task)
	doc.ID = primitive.NewObjectID()

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = doc.ID.Hex()

	return nil
}

func (repo *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]*entity.Task, error) {
	query := bson.M{}
	if filter.CreatedBy != "" {
		query["_createdBy"] = filter.CreatedBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tasks")
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode tasks")
	}

	tasks := make([]*entity.Task, 0, len(docs))
	for i := range docs {
		tasks = append(tasks, docs[i].toEntity())
	}

	return tasks, nil
}

func (repo *taskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	var doc taskDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find task")
	}

	return doc.toEntity(), nil
}

func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	oid, ok := parseID(task.ID)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":        task.Title,
		"isCompleted":  task.IsCompleted,
		"highPriority": task.HighPriority,
		"updatedAt":    repo.now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	if err := repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update task")
	}

	return doc.toEntity(), nil
}

func (repo *taskRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return repository.ErrTaskNotFound
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete task")
	}
	if res.DeletedCount == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}
