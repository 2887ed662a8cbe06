package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/nettoyage-lausanne/internal/config"
	"github.com/deppfellow/nettoyage-lausanne/internal/database"
	"github.com/deppfellow/nettoyage-lausanne/internal/errs"
	"github.com/deppfellow/nettoyage-lausanne/internal/metrics"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/storeerr"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger:  &logger,
		Metrics: metrics.New(),
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(RequestID(), mw.Tracing.NewRelicMiddleware(), mw.ContextEnhancer.EnhanceContext(), mw.Global.Metrics(), mw.Global.CORS())
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID_GeneratesAndReuses(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.GET("/id", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/id", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(e, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestEnhanceContext_StoresLogger(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer()
	logger := zerolog.New(&buf)
	s.Logger = &logger

	e := newTestEcho(s)
	e.GET("/log", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from context")
		GetLogger(c).Info().Msg("from echo")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/log", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := serve(e, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "/log", entry["path"])
	}
}

func TestGetLogger_Fallback(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}

func TestGlobalErrorHandler_HTTPError(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.POST("/form", func(c echo.Context) error {
		return errs.NewUnprocessableEntityError("", []errs.FieldError{{Field: "email", Error: "must be a valid email address"}})
	})

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/form", nil))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "UNPROCESSABLE_ENTITY", body.Code)
	assert.Equal(t, "email: must be a valid email address", body.Detail)
	assert.True(t, body.Override)
	assert.Len(t, body.Errors, 1)
}

func TestGlobalErrorHandler_StoreError(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.POST("/form", func(c echo.Context) error {
		return storeerr.Wrap("insert", "lead", database.ErrNotConfigured)
	})

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/form", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "STORE_UNAVAILABLE", body.Code)
	assert.Equal(t, errs.StorageErrorPrefix+database.ErrNotConfigured.Error(), body.Detail)
	require.NotNil(t, body.Action)
	assert.Equal(t, errs.ActionTypeRetry, body.Action.Type)
}

func TestGlobalErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("secret internals")
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret internals")
}

func TestGlobalErrorHandler_NotFound(t *testing.T) {
	e := newTestEcho(newTestServer())

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "Route not found", body.Message)
	assert.Equal(t, "Not Found", body.Detail)
}

func TestCORS_ReflectsOriginWithCredentials(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.GET("/cors", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/cors", nil)
	req.Header.Set(echo.HeaderOrigin, "https://nettoyage-lausanne.ch")
	rec := serve(e, req)

	assert.Equal(t, "https://nettoyage-lausanne.ch", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestMetrics_CountsRoutes(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	serve(e, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/missing", nil))

	count, err := testutil.GatherAndCount(s.Metrics.Registry(), "nettoyage_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestResponseStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, responseStatus(http.StatusOK, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, responseStatus(http.StatusOK, errs.NewUnprocessableEntityError("x", nil)))
	assert.Equal(t, http.StatusMethodNotAllowed, responseStatus(http.StatusOK, echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, responseStatus(http.StatusOK, context.DeadlineExceeded))
}
