// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/errors"
	"planner/internal/infra/validation"
	"planner/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validator    *validation.Validator
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validator    *validation.Validator
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validator:    params.Validator,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the payload, enforces email uniqueness and stores a bcrypt hash of the password.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validator.Check(input).Err(); err != nil {
		srv.log(ctx).Debug("Registration payload rejected", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration with taken email", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrEmailAlreadyExists)
	case !errors.Is(err, repository.ErrAccountNotFound):
		srv.log(ctx).Error("Failed to look up account during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrAccountCreationFailed, err), "failed to look up account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "failed to hash password")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		// The unique index catches registrations that raced past the lookup above.
		if errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			srv.log(ctx).Warn("Registration lost uniqueness race", slog.String("email", input.Email))

			return nil, errors.Wrap(err, "failed to create account")
		}

		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrAccountCreationFailed, err), "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID))

	return &usecase.RegisterOutput{AccountID: account.ID}, nil
}

// Login checks the credentials and issues a signed access token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.validator.Check(input).Err(); err != nil {
		srv.log(ctx).Debug("Login payload rejected", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Error("Failed to load account during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrLoginFailed, err), "failed to load account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(account.Name, account.Email, account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.String("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(errors.Join(domainerrors.ErrLoginFailed, err), "failed to issue token")
	}

	srv.log(ctx).Debug("Account logged in", slog.String("accountID", account.ID))

	return &usecase.LoginOutput{
		UserID: account.ID,
		Token:  token,
	}, nil
}
