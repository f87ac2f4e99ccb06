package handler

import (
	"net/http"

	"planner/internal/delivery/api/response"
	"planner/internal/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
}

// TaskHandler serves the /api/tasks routes.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{taskUC: params.TaskUC}
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	var input usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid task input")
	}

	task, err := h.taskUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task)
}

// ListTasks returns every task, or only those created by the userId query parameter.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskUC.List(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks)
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	task, err := h.taskUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
	var input usecase.UpdateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid task input")
	}

	task, err := h.taskUC.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	if err := h.taskUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Task deleted successfully"})
}
