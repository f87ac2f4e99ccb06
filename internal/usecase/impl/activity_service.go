package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/infra/validation"
	"planner/internal/usecase"

	"go.uber.org/fx"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	validator    *validation.Validator
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Validator    *validation.Validator
	Logger       *slog.Logger
}

// NewActivityService creates a new activity service instance
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		validator:    params.Validator,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *activityService) Create(ctx context.Context, input *usecase.ActivityInput) (*entity.Activity, error) {
	if err := srv.validator.Check(input).Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	activity := input.ToEntity()
	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		return nil, errors.Wrap(err, "failed to create activity")
	}

	srv.log(ctx).Debug("Activity created", slog.String("activityID", activity.ID))

	return activity, nil
}

func (srv *activityService) List(ctx context.Context) ([]*entity.Activity, error) {
	activities, err := srv.activityRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

func (srv *activityService) Get(ctx context.Context, id string) (*entity.Activity, error) {
	activity, err := srv.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.WithStack(domainerrors.ErrActivityNotFound)
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	return activity, nil
}

func (srv *activityService) Search(ctx context.Context, field, value string) ([]*entity.Activity, error) {
	if !slices.Contains(repository.ActivitySearchFields, field) {
		return nil, errors.WithStack(unsupportedField(field))
	}

	activities, err := srv.activityRepo.Search(ctx, field, value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search activities")
	}

	return activities, nil
}

func (srv *activityService) Update(ctx context.Context, id string, input *usecase.ActivityInput) error {
	if err := srv.validator.Check(input).Err(); err != nil {
		return errors.WithStack(err)
	}

	activity := input.ToEntity()
	activity.ID = id

	if err := srv.activityRepo.Update(ctx, activity); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return errors.WithStack(domainerrors.ErrActivityNotFound.WithMessage("Cannot update activity with id=" + id))
		}

		return errors.Wrap(err, "failed to update activity")
	}

	return nil
}

func (srv *activityService) Delete(ctx context.Context, id string) error {
	if err := srv.activityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return errors.WithStack(domainerrors.ErrActivityNotFound.WithMessage("Cannot delete activity with id=" + id))
		}

		return errors.Wrap(err, "failed to delete activity")
	}

	srv.log(ctx).Debug("Activity deleted", slog.String("activityID", id))

	return nil
}

func unsupportedField(field string) error {
	return domainerrors.ErrUnsupportedQueryField.WithMessage(`"` + field + `" cannot be queried`)
}
