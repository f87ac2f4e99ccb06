package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response.
// Error is null on success; Data is omitted on failure.
type Envelope struct {
	Error *string `json:"error"`
	Data  any     `json:"data,omitempty"`
}

// Message is the data of responses that only confirm an action.
type Message struct {
	Message string `json:"message"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Data: data})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{Error: &message})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}
