package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"planner/config"
	apimiddleware "planner/internal/delivery/api/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newPipelineEcho() *echo.Echo {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	e := echo.New()
	usePipeline(e, cfg, slog.New(slog.DiscardHandler))
	e.POST("/api/login", func(c echo.Context) error {
		c.Response().Header().Set(apimiddleware.HeaderAuthToken, "tok")

		return c.NoContent(http.StatusOK)
	})

	return e
}

func TestPipeline_CORSPreflightAllowsAuthToken(t *testing.T) {
	e := newPipelineEcho()

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, apimiddleware.HeaderAuthToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), apimiddleware.HeaderAuthToken)
}

func TestPipeline_ExposesAuthTokenAndRequestID(t *testing.T) {
	e := newPipelineEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", rec.Header().Get(apimiddleware.HeaderAuthToken))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlExposeHeaders), apimiddleware.HeaderAuthToken)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestPipeline_BodyLimit(t *testing.T) {
	e := newPipelineEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(strings.Repeat("x", 2048)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
