package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoapi/config"
	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-request-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxRequestID string
	err := mw.Process(func(c echo.Context) error {
		ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "client-request-1", ctxRequestID)
	assert.Equal(t, "client-request-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesInvalidID(t *testing.T) {
	for _, id := range []string{"", "has space", strings.Repeat("a", maxRequestIDLength+1), "tab\tid"} {
		e := echo.New()
		mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, id)
		rec := httptest.NewRecorder()

		err := mw.Process(func(c echo.Context) error { return nil })(e.NewContext(req, rec))

		require.NoError(t, err)
		_, parseErr := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NoError(t, parseErr, "id %q should be replaced", id)
	}
}

func TestLoggerMiddleware_DebugLogsWithoutToken(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	handler := NewRequestIDMiddleware(logger).Process(
		NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
			deliverycontext.SetIdentity(c, &entity.Identity{ID: uuid.New()}, "secret-token")

			return c.NoContent(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("x-auth", "secret-token")
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP Request"`)
	assert.Contains(t, out, `"identity_id"`)
	assert.Contains(t, out, `"request_id"`)
	assert.NotContains(t, out, "secret-token")
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))

	assert.Empty(t, buf.String())
}
