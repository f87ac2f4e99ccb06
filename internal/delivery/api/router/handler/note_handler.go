package handler

import (
	"net/http"

	"planner/internal/delivery/api/response"
	"planner/internal/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NoteHandlerParams holds dependencies for NoteHandler, injected by Fx.
type NoteHandlerParams struct {
	fx.In

	NoteUC usecase.NoteUsecase
}

// NoteHandler serves the /api/notes routes.
type NoteHandler struct {
	noteUC usecase.NoteUsecase
}

// NewNoteHandler is the constructor for NoteHandler
func NewNoteHandler(params NoteHandlerParams) *NoteHandler {
	return &NoteHandler{noteUC: params.NoteUC}
}

func (h *NoteHandler) CreateNote(c echo.Context) error {
	var input usecase.NoteInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid note input")
	}

	note, err := h.noteUC.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, note)
}

func (h *NoteHandler) ListNotes(c echo.Context) error {
	notes, err := h.noteUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notes)
}

func (h *NoteHandler) GetNote(c echo.Context) error {
	note, err := h.noteUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, note)
}

func (h *NoteHandler) SearchNotes(c echo.Context) error {
	notes, err := h.noteUC.Search(c.Request().Context(), c.Param("field"), pathValue(c, "value"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notes)
}

func (h *NoteHandler) UpdateNote(c echo.Context) error {
	var input usecase.NoteInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid note input")
	}

	if err := h.noteUC.Update(c.Request().Context(), c.Param("id"), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Note was successfully updated."})
}

func (h *NoteHandler) DeleteNote(c echo.Context) error {
	if err := h.noteUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Message{Message: "Note was successfully deleted."})
}
