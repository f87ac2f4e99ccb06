package middleware

import (
	"log/slog"
	"net/http"

	"planner/internal/delivery/api/response"
	deliverycontext "planner/internal/delivery/context"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every handler error as the {"error": ...} envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := m.resolve(c, err)
	_ = response.Error(c, status, message)
}

// resolve picks the status and client message for err. Server-side failures are
// logged with their cause, which never reaches the client.
func (m *ErrorMiddleware) resolve(c echo.Context, err error) (int, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, "Request failed", err,
				slog.String("code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
			)
		}

		return appErr.HTTPCode(), appErr.Message()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}

		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	m.logFailure(c, "Unhandled error", err)

	return http.StatusInternalServerError, domainerrors.ErrInternalError.Message()
}

func (m *ErrorMiddleware) logFailure(c echo.Context, msg string, err error, attrs ...slog.Attr) {
	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

	attrs = append(attrs,
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)
	logger.LogAttrs(req.Context(), slog.LevelError, msg, attrs...)
}
