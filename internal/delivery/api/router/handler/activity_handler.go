package handler

import (
	"net/http"
	"net/url"

	"planner/internal/delivery/api/response"
	"planner/internal/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler serves the /api/activities routes.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{activityUC: params.ActivityUC}
}

func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	var input usecase.ActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid activity input")
	}

	activity, err := h.activityUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, activity)
}

func (h *ActivityHandler) ListActivities(c echo.Context) error {
	activities, err := h.activityUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities)
}

func (h *ActivityHandler) GetActivity(c echo.Context) error {
	activity, err := h.activityUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity)
}

// SearchActivities handles /query/:field/:value.
func (h *ActivityHandler) SearchActivities(c echo.Context) error {
	activities, err := h.activityUC.Search(c.Request().Context(), c.Param("field"), pathValue(c, "value"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities)
}

func (h *ActivityHandler) UpdateActivity(c echo.Context) error {
	var input usecase.ActivityInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid activity input")
	}

	if err := h.activityUC.Update(c.Request().Context(), c.Param("id"), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Activity was successfully updated."})
}

func (h *ActivityHandler) DeleteActivity(c echo.Context) error {
	if err := h.activityUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Activity was successfully deleted."})
}

// pathValue returns the unescaped path parameter, or the raw one when it is not valid escaping.
func pathValue(c echo.Context, name string) string {
	raw := c.Param(name)
	if value, err := url.PathUnescape(raw); err == nil {
		return value
	}

	return raw
}
