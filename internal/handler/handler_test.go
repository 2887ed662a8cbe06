package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/nettoyage-lausanne/internal/config"
	"github.com/deppfellow/nettoyage-lausanne/internal/metrics"
	"github.com/deppfellow/nettoyage-lausanne/internal/middleware"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/validation"
)

type echoRequest struct {
	Word string `json:"word" validate:"required"`
}

func (r *echoRequest) Validate() error {
	return validation.Struct(r)
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config:  &config.Config{Primary: config.Primary{Env: "test"}},
		Logger:  &logger,
		Metrics: metrics.New(),
	}
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandle_FreshPayloadPerRequest(t *testing.T) {
	s := newTestServer()
	h := NewHandler(s)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	e.POST("/echo", Handle(h, func(c echo.Context, req *echoRequest) (map[string]string, error) {
		return map[string]string{"word": req.Word}, nil
	}, http.StatusCreated, func() *echoRequest { return &echoRequest{} }))

	rec := post(e, `{"word":"bonjour"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"word":"bonjour"}`, rec.Body.String())

	// A value bound by the previous request must not satisfy this one.
	rec = post(e, `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestServeOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.html"), []byte("<html>docs</html>"), 0o600))

	h := NewOpenAPIHandler(newTestServer())
	h.dir = dir

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), rec)

	require.NoError(t, h.ServeOpenAPIUI(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "docs")
}

func TestServeOpenAPIUI_Missing(t *testing.T) {
	h := NewOpenAPIHandler(newTestServer())
	h.dir = t.TempDir()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), httptest.NewRecorder())
	assert.Error(t, h.ServeOpenAPIUI(c))
}

func TestCheckHealth_NoStore(t *testing.T) {
	h := NewHealthHandler(newTestServer())

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	require.NoError(t, h.CheckHealth(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unhealthy"`)
}
