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
)

type accountRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewAccountRepository creates a new account repository backed by the users collection.
func NewAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &accountRepository{
		coll: db.Collection(usersCollection),
		now:  time.Now,
	}
}

func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *accountRepository) findOne(ctx context.Context, filter bson.M) (*entity.Account, error) {
	var doc accountDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return doc.toEntity(), nil
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	doc := &accountDocument{
		ID:        primitive.NewObjectID(),
		Name:      account.Name,
		Email:     account.Email,
		Password:  account.PasswordHash,
		CreatedAt: repo.now().UTC(),
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.WithStack(domainerrors.ErrEmailAlreadyExists)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = doc.ID.Hex()
	account.CreatedAt = doc.CreatedAt

	return nil
}
