package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"planner/internal/delivery/api/middleware"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	mockUC "planner/internal/mocks/usecase"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newResourceEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestActivityHandler(t *testing.T) {
	activityUC := mockUC.NewMockActivityUsecase(t)
	h := NewActivityHandler(ActivityHandlerParams{ActivityUC: activityUC})

	e := newResourceEcho()
	e.POST("/api/activities", h.CreateActivity)
	e.GET("/api/activities/query/:field/:value", h.SearchActivities)
	e.PUT("/api/activities/:id", h.UpdateActivity)
	e.DELETE("/api/activities/:id", h.DeleteActivity)

	t.Run("create", func(t *testing.T) {
		date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
		activityUC.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*usecase.ActivityInput")).
			Run(func(_ context.Context, input *usecase.ActivityInput) {
				assert.Equal(t, "Yoga", input.Title)
				assert.Equal(t, date, input.Date)
			}).
			Return(&entity.Activity{ID: "a1", Title: "Yoga", Repeating: entity.RepeatingNone}, nil).
			Once()

		rec := serve(e, http.MethodPost, "/api/activities",
			`{"title":"Yoga","date":"2026-10-20T00:00:00Z","startTime":"07:00","endTime":"08:00","_createdBy":"u1"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"_id":"a1"`)
		assert.Contains(t, rec.Body.String(), `"repeating":"None"`)
	})

	t.Run("search unescapes the value", func(t *testing.T) {
		activityUC.EXPECT().
			Search(mock.Anything, "title", "yoga class").
			Return([]*entity.Activity{}, nil).
			Once()

		rec := serve(e, http.MethodGet, "/api/activities/query/title/yoga%20class", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"error":null,"data":[]}`, rec.Body.String())
	})

	t.Run("search on an unsupported field", func(t *testing.T) {
		activityUC.EXPECT().
			Search(mock.Anything, "password", "x").
			Return(nil, errors.WithStack(domainerrors.ErrUnsupportedQueryField.WithMessage(`"password" cannot be queried`))).
			Once()

		rec := serve(e, http.MethodGet, "/api/activities/query/password/x", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"\"password\" cannot be queried"}`, rec.Body.String())
	})

	t.Run("update", func(t *testing.T) {
		activityUC.EXPECT().Update(mock.Anything, "a1", mock.AnythingOfType("*usecase.ActivityInput")).Return(nil).Once()

		rec := serve(e, http.MethodPut, "/api/activities/a1", `{"title":"Yoga"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"error":null,"data":{"message":"Activity was successfully updated."}}`, rec.Body.String())
	})

	t.Run("delete missing", func(t *testing.T) {
		activityUC.EXPECT().
			Delete(mock.Anything, "a404").
			Return(errors.WithStack(domainerrors.ErrActivityNotFound.WithMessage("Cannot delete activity with id=a404"))).
			Once()

		rec := serve(e, http.MethodDelete, "/api/activities/a404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Cannot delete activity with id=a404"}`, rec.Body.String())
	})
}

func TestNoteHandler(t *testing.T) {
	noteUC := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(NoteHandlerParams{NoteUC: noteUC})

	e := newResourceEcho()
	e.GET("/api/notes", h.ListNotes)
	e.GET("/api/notes/:id", h.GetNote)

	t.Run("list", func(t *testing.T) {
		noteUC.EXPECT().List(mock.Anything).Return([]*entity.Note{{ID: "n1", Text: "call mom", CreatedBy: "u1"}}, nil).Once()

		rec := serve(e, http.MethodGet, "/api/notes", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"text":"call mom"`)
	})

	t.Run("store failure hides the cause", func(t *testing.T) {
		noteUC.EXPECT().Get(mock.Anything, "n1").Return(nil, errors.New("connection refused")).Once()

		rec := serve(e, http.MethodGet, "/api/notes/n1", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.JSONEq(t, `{"error":"Internal server error, please try again later"}`, rec.Body.String())
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	taskUC := mockUC.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})

	e := newResourceEcho()
	e.DELETE("/api/tasks/:id", h.DeleteTask)

	taskUC.EXPECT().Delete(mock.Anything, "t1").Return(nil).Once()
	taskUC.EXPECT().Delete(mock.Anything, "t404").Return(errors.WithStack(domainerrors.ErrTaskNotFound)).Once()

	rec := serve(e, http.MethodDelete, "/api/tasks/t1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":null,"data":{"message":"Task deleted successfully"}}`, rec.Body.String())

	rec = serve(e, http.MethodDelete, "/api/tasks/t404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
}
