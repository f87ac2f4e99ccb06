package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: "", keep: false},
		{name: "client id reused", incoming: "req-123", keep: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLogger(c.Request().Context()).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			assert.Contains(t, buf.String(), `"request_id":"`+seen+`"`)
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newCfg := func(debug bool) *config.Config {
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return cfg
	}

	t.Run("logs status and user when debug is on", func(t *testing.T) {
		var buf bytes.Buffer
		mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), newCfg(true))

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/tasks?userId=u1", nil), httptest.NewRecorder())

		err := mw.Handle(func(c echo.Context) error {
			deliverycontext.SetUserID(c, "u1")

			return echo.NewHTTPError(http.StatusNotFound, "missing")
		})(c)
		require.NoError(t, err)

		line := buf.String()
		assert.Contains(t, line, `"level":"WARN"`)
		assert.Contains(t, line, `"status":404`)
		assert.Contains(t, line, `"user_id":"u1"`)
		assert.Contains(t, line, `"query":"userId=u1"`)
	})

	t.Run("silent without debug", func(t *testing.T) {
		var buf bytes.Buffer
		mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), newCfg(false))

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
		assert.Empty(t, buf.String())
	})
}
