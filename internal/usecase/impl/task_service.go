package impl

import (
	"context"
	"log/slog"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"
	"planner/internal/infra/validation"
	"planner/internal/usecase"

	"go.uber.org/fx"
)

type taskService struct {
	taskRepo  repository.TaskRepository
	validator *validation.Validator
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo  repository.TaskRepository
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewTaskService creates a new task service instance
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo:  params.TaskRepo,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *taskService) Create(ctx context.Context, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if err := srv.validator.Check(input).Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	task := &entity.Task{
		Title:        input.Title,
		IsCompleted:  input.IsCompleted,
		HighPriority: input.HighPriority,
		CreatedBy:    input.CreatedBy,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.String("taskID", task.ID), slog.String("createdBy", task.CreatedBy))

	return task, nil
}

func (srv *taskService) List(ctx context.Context, userID string) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.List(ctx, repository.TaskFilter{CreatedBy: userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

func (srv *taskService) Get(ctx context.Context, id string) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, taskError(err, "failed to find task")
	}

	return task, nil
}

func (srv *taskService) Update(ctx context.Context, id string, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	if err := srv.validator.Check(input).Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	task, err := srv.taskRepo.Update(ctx, &entity.Task{
		ID:           id,
		Title:        input.Title,
		IsCompleted:  input.IsCompleted,
		HighPriority: input.HighPriority,
	})
	if err != nil {
		return nil, taskError(err, "failed to update task")
	}

	return task, nil
}

func (srv *taskService) Delete(ctx context.Context, id string) error {
	if err := srv.taskRepo.Delete(ctx, id); err != nil {
		return taskError(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.String("taskID", id))

	return nil
}

func taskError(err error, message string) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return errors.Wrap(domainerrors.ErrTaskNotFound, message)
	}

	return errors.Wrap(err, message)
}
