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
	"gorm.io/gorm/clause"
)

type taskRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTaskRepository returns the GORM-backed task repository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db:  db,
		now: time.Now,
	}
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate task id")
	}

	now := repo.now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	taskM := fromTaskDomain(task)
	taskM.ID = id

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = id.String()

	return nil
}

func (repo *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]*entity.Task, error) {
	query := repo.db.WithContext(ctx)
	if filter.CreatedBy != "" {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}

	var taskMs []*model.TaskModel
	if err := query.Order("created_at DESC").Find(&taskMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for _, taskM := range taskMs {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

func (repo *taskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).Where("id = ?", uid).First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find task")
	}

	return toTaskDomain(&taskM), nil
}

func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	uid, ok := parseID(task.ID)
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	var taskM model.TaskModel
	result := repo.db.WithContext(ctx).
		Model(&taskM).
		Clauses(clause.Returning{}).
		Where("id = ?", uid).
		Updates(map[string]any{
			"title":         task.Title,
			"is_completed":  task.IsCompleted,
			"high_priority": task.HighPriority,
			"updated_at":    repo.now().UTC(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTaskNotFound
	}

	return toTaskDomain(&taskM), nil
}

func (repo *taskRepository) Delete(ctx context.Context, id string) error {
	uid, ok := parseID(id)
	if !ok {
		return repository.ErrTaskNotFound
	}

	result := repo.db.WithContext(ctx).Where("id = ?", uid).Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}
