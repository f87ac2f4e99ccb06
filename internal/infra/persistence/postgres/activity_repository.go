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

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository returns the GORM-backed activity repository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate activity id")
	}

	activityM := fromActivityDomain(activity)
	activityM.ID = id

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = id.String()

	return nil
}

func (repo *activityRepository) List(ctx context.Context) ([]*entity.Activity, error) {
	return repo.find(repo.db.WithContext(ctx))
}

func (repo *activityRepository) Search(ctx context.Context, field, value string) ([]*entity.Activity, error) {
	query, arg, err := containsClause(field, value, repository.ActivitySearchFields)
	if err != nil {
		return nil, err
	}

	return repo.find(repo.db.WithContext(ctx).Where(query, arg))
}

func (repo *activityRepository) find(tx *gorm.DB) ([]*entity.Activity, error) {
	var activityMs []*model.ActivityModel
	if err := tx.Find(&activityMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find activities")
	}

	activities := make([]*entity.Activity, 0, len(activityMs))
	for _, activityM := range activityMs {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

func (repo *activityRepository) FindByID(ctx context.Context, id string) (*entity.Activity, error) {
	uid, ok := parseID(id)
	if !ok {
		return nil, repository.ErrActivityNotFound
	}

	var activityM model.ActivityModel
	if err := repo.db.WithContext(ctx).Where("id = ?", uid).First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find activity")
	}

	return toActivityDomain(&activityM), nil
}

func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	uid, ok := parseID(activity.ID)
	if !ok {
		return repository.ErrActivityNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", uid).
		Updates(map[string]any{
			"title":        activity.Title,
			"description":  activity.Description,
			"date":         activity.Date,
			"start_time":   activity.StartTime,
			"end_time":     activity.EndTime,
			"place":        activity.Place,
			"is_repeating": activity.IsRepeating,
			"repeating":    activity.Repeating.String(),
			"created_by":   activity.CreatedBy,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

func (repo *activityRepository) Delete(ctx context.Context, id string) error {
	uid, ok := parseID(id)
	if !ok {
		return repository.ErrActivityNotFound
	}

	result := repo.db.WithContext(ctx).Where("id = ?", uid).Delete(&model.ActivityModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}
