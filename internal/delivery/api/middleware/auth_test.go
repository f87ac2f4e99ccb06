package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planner/config"
	"planner/internal/domain/service"
	"planner/internal/infra/auth"
	mockSvc "planner/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	missingBody = `{"error":"Access denied. No token provided."}`
	invalidBody = `{"error":"Invalid Token"}`
)

type gateResult struct {
	rec    *httptest.ResponseRecorder
	called bool
	claims *service.Claims
}

func runGate(t *testing.T, m *AuthMiddleware, headers map[string]string) gateResult {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	result := gateResult{rec: rec}
	err := m.Authenticate(func(c echo.Context) error {
		result.called = true
		result.claims, _ = GetClaims(c)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return result
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	claims := &service.Claims{Name: "Julia Roberts", Email: "julia@example.com", UserID: "u1"}

	tests := []struct {
		name       string
		headers    map[string]string
		setup      func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no token",
			headers:    map[string]string{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   missingBody,
		},
		{
			name:       "empty bearer",
			headers:    map[string]string{"Authorization": "Bearer "},
			wantStatus: http.StatusUnauthorized,
			wantBody:   missingBody,
		},
		{
			name:    "bearer token",
			headers: map[string]string{"Authorization": "Bearer good"},
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "authorization without prefix",
			headers: map[string]string{"Authorization": "good"},
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "auth-token header",
			headers: map[string]string{HeaderAuthToken: "good"},
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "bearer wins over auth-token",
			headers: map[string]string{"Authorization": "Bearer stale", HeaderAuthToken: "good"},
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("stale").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   invalidBody,
		},
		{
			name: "basic scheme falls back to auth-token",
			headers: map[string]string{
				"Authorization": "Basic dXNlcjpwYXNz",
				HeaderAuthToken: "good",
			},
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "basic scheme alone",
			headers:    map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   missingBody,
		},
		{
			name:    "lowercase bearer scheme",
			headers: map[string]string{"Authorization": "bearer good"},
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:    "invalid token",
			headers: map[string]string{HeaderAuthToken: "garbage"},
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().Verify("garbage").Return(nil, errors.New("token is malformed"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   invalidBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			result := runGate(t, newAuthMiddleware(tokenSvc, discardLogger(), DefaultExtractors...), tt.headers)

			assert.Equal(t, tt.wantStatus, result.rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, result.called)
				assert.Equal(t, claims, result.claims)

				return
			}

			assert.False(t, result.called)
			assert.JSONEq(t, tt.wantBody, result.rec.Body.String())
		})
	}
}

func TestAuthMiddleware_WithJWTService(t *testing.T) {
	issuer, err := auth.NewJWTService(&config.Config{Auth: config.AuthConfig{TokenSecret: "planner-secret", TokenTTL: time.Hour}})
	require.NoError(t, err)
	forger, err := auth.NewJWTService(&config.Config{Auth: config.AuthConfig{TokenSecret: "another-secret", TokenTTL: time.Hour}})
	require.NoError(t, err)

	gate := NewAuthMiddleware(AuthMiddlewareParams{TokenService: issuer, Logger: discardLogger()})

	t.Run("token from login passes", func(t *testing.T) {
		token, err := issuer.Issue("Julia Roberts", "julia@example.com", "u1")
		require.NoError(t, err)

		result := runGate(t, gate, map[string]string{"Authorization": "Bearer " + token})

		assert.Equal(t, http.StatusOK, result.rec.Code)
		require.True(t, result.called)
		assert.Equal(t, "u1", result.claims.UserID)
		assert.Equal(t, "julia@example.com", result.claims.Email)
	})

	t.Run("token signed with another secret fails", func(t *testing.T) {
		token, err := forger.Issue("Julia Roberts", "julia@example.com", "u1")
		require.NoError(t, err)

		result := runGate(t, gate, map[string]string{HeaderAuthToken: token})

		assert.Equal(t, http.StatusUnauthorized, result.rec.Code)
		assert.False(t, result.called)
		assert.JSONEq(t, invalidBody, result.rec.Body.String())
	})
}

func TestGetUserID_WithoutClaims(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
}
