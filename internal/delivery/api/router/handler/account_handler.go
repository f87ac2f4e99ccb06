// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"

	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/response"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration and login.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Register creates an account and answers with its id.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}

	output, err := h.accountUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.requestLogger(c).Info("Account registered", slog.String("account_id", output.AccountID))

	return response.Success(c, http.StatusCreated, output.AccountID)
}

// Login authenticates the account and returns the access token in the body and the auth-token header.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}

	output, err := h.accountUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(middleware.HeaderAuthToken, output.Token)
	h.requestLogger(c).Info("Account logged in", slog.String("account_id", output.UserID))

	return response.Success(c, http.StatusOK, output)
}

func (h *AccountHandler) requestLogger(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
