package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"planner/config"
	"planner/internal/delivery/api/middleware"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/infra/auth"
	"planner/internal/infra/validation"
	mockUC "planner/internal/mocks/usecase"
	"planner/internal/usecase"
	"planner/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memAccountRepository keeps accounts in memory with a unique email index.
type memAccountRepository struct {
	mu       sync.Mutex
	byEmail  map[string]*entity.Account
	sequence int
}

func newMemAccountRepository() *memAccountRepository {
	return &memAccountRepository{byEmail: make(map[string]*entity.Account)}
}

func (r *memAccountRepository) FindByID(_ context.Context, id string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.byEmail {
		if account.ID == id {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memAccountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account

	return &copied, nil
}

func (r *memAccountRepository) Create(_ context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return errors.WithStack(domainerrors.ErrEmailAlreadyExists)
	}

	r.sequence++
	account.ID = fmt.Sprintf("%024x", r.sequence)
	account.CreatedAt = time.Now()
	copied := *account
	r.byEmail[account.Email] = &copied

	return nil
}

type apiFixture struct {
	echo   *echo.Echo
	repo   *memAccountRepository
	taskUC *mockUC.MockTaskUsecase
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: config.AuthConfig{TokenSecret: "planner-test-secret", TokenTTL: 2 * time.Hour}}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	repo := newMemAccountRepository()
	accountHandler := NewAccountHandler(AccountHandlerParams{
		AccountUC: impl.NewAccountService(impl.AccountServiceParams{
			AccountRepo:  repo,
			Hasher:       auth.NewBcryptHasherWithCost(4),
			TokenService: tokenService,
			Validator:    validation.New(),
			Logger:       logger,
		}),
		Logger: logger,
	})

	taskUC := mockUC.NewMockTaskUsecase(t)
	taskHandler := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})
	gate := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokenService, Logger: logger})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/register", accountHandler.Register)
	e.POST("/api/login", accountHandler.Login)
	e.GET("/api/tasks", taskHandler.ListTasks, gate.Authenticate)

	return apiFixture{echo: e, repo: repo, taskUC: taskUC}
}

func (f apiFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Error *string         `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

const juliaSignup = `{"name":"Julia Lalala","email":"julia@gmail.com","password":"12345678"}`

func TestAccountHandler_JuliaScenario(t *testing.T) {
	f := newAPIFixture(t)

	// register
	rec := f.do(http.MethodPost, "/api/register", juliaSignup, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	assert.Nil(t, env.Error)
	var accountID string
	require.NoError(t, json.Unmarshal(env.Data, &accountID))
	assert.NotEmpty(t, accountID)

	stored, err := f.repo.FindByEmail(context.Background(), "julia@gmail.com")
	require.NoError(t, err)
	assert.NotEqual(t, "12345678", stored.PasswordHash)

	// register again with the same email
	rec = f.do(http.MethodPost, "/api/register", juliaSignup, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email already exists."}`, rec.Body.String())

	// login with the right password
	rec = f.do(http.MethodPost, "/api/login", `{"email":"julia@gmail.com","password":"12345678"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env = decodeEnvelope(t, rec)
	assert.Nil(t, env.Error)
	var login struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, accountID, login.UserID)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, login.Token, rec.Header().Get(middleware.HeaderAuthToken))

	// login with a wrong password
	rec = f.do(http.MethodPost, "/api/login", `{"email":"julia@gmail.com","password":"87654321"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email or password is incorrect"}`, rec.Body.String())

	// the issued token opens the protected routes
	f.taskUC.EXPECT().List(mock.Anything, accountID).Return([]*entity.Task{}, nil)
	rec = f.do(http.MethodGet, "/api/tasks?userId="+accountID, "", map[string]string{middleware.HeaderAuthToken: login.Token})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"error":null,"data":[]}`, rec.Body.String())
}

func TestAccountHandler_Register_ValidationMessage(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/register", `{"name":"Jul","email":"julia@gmail.com","password":"12345678"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"\"name\" length must be at least 6 characters long"}`, rec.Body.String())
}

func TestAccountHandler_Register_PasswordLengthInUTF16Units(t *testing.T) {
	f := newAPIFixture(t)

	// 20 emoji are 40 UTF-16 units and 80 bytes, past bcrypt's input limit.
	tooLong := fmt.Sprintf(`{"name":"Julia Lalala","email":"julia@gmail.com","password":%q}`, strings.Repeat("😀", 20))
	rec := f.do(http.MethodPost, "/api/register", tooLong, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"\"password\" length must be less than or equal to 20 characters long"}`, rec.Body.String())

	fits := fmt.Sprintf(`{"name":"Julia Lalala","email":"julia@gmail.com","password":%q}`, strings.Repeat("😀", 10))
	rec = f.do(http.MethodPost, "/api/register", fits, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	login := fmt.Sprintf(`{"email":"julia@gmail.com","password":%q}`, strings.Repeat("😀", 10))
	rec = f.do(http.MethodPost, "/api/login", login, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAccountHandler_LogsAccountID(t *testing.T) {
	var buf bytes.Buffer
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{
		AccountUC: accountUC,
		Logger:    slog.New(slog.NewJSONHandler(&buf, nil)),
	})

	accountUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(&usecase.RegisterOutput{AccountID: "acc-1"}, nil)
	accountUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(&usecase.LoginOutput{UserID: "acc-1", Token: "tok"}, nil)

	e := newResourceEcho()
	e.POST("/api/register", h.Register)
	e.POST("/api/login", h.Login)

	rec := serve(e, http.MethodPost, "/api/register", juliaSignup)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, buf.String(), `"msg":"Account registered","account_id":"acc-1"`)

	rec = serve(e, http.MethodPost, "/api/login", `{"email":"julia@gmail.com","password":"12345678"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"msg":"Account logged in","account_id":"acc-1"`)
}

func TestAccountHandler_Login_UnknownEmail(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/login", `{"email":"nobody@gmail.com","password":"12345678"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Email or password is incorrect"}`, rec.Body.String())
}

func TestAccountHandler_MalformedBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/register", `{"name":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid registration input"}`, rec.Body.String())
}

func TestTaskHandler_RequiresToken(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/tasks", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Access denied. No token provided."}`, rec.Body.String())
}
