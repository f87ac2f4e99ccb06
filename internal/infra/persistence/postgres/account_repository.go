// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAccountRepository returns the GORM-backed account repository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db:  db,
		now: time.Now,
	}
}

// FindByID retrieves a single account by its ID.
func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return repo.first(ctx, "id = ?", uid)
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.first(ctx, "email = ?", email)
}

func (repo *accountRepository) first(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// Create inserts the account. A duplicate email is reported as ErrEmailAlreadyExists.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate account id")
	}

	accountM := &model.AccountModel{
		ID:        id,
		Name:      account.Name,
		Email:     account.Email,
		Password:  account.PasswordHash,
		CreatedAt: repo.now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(domainerrors.ErrEmailAlreadyExists)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID.String()
	account.CreatedAt = accountM.CreatedAt

	return nil
}
