package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/nettoyage-lausanne/internal/errs"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/storeerr"
)

// unmatchedRoute labels requests that hit no route in metrics.
const unmatchedRoute = "unmatched"

// GlobalMiddlewares groups "global" middleware and the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by the server config.
//
// The website sends credentials, so a wildcard origin is answered with the
// requesting origin rather than "*", which browsers reject alongside
// Access-Control-Allow-Credentials.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     global.server.Config.Server.CORSAllowedOrigins,
		AllowCredentials: true,

		UnsafeWildcardOriginWithAllowCredentials: true,
	})
}

// RequestLogger logs one "API" line per request, its level picked from
// the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := responseStatus(v.Status, v.Error)

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Metrics counts requests and their latency per route template.
func (global *GlobalMiddlewares) Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}

			global.server.Metrics.ObserveRequest(
				c.Request().Method,
				route,
				responseStatus(c.Response().Status, err),
				time.Since(start),
			)
			return err
		}
	}
}

// responseStatus derives the status a request will end with.
//
// When a handler returns an error the response is not written yet; the
// global error handler writes it later from the error itself.
// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func responseStatus(written int, err error) int {
	if err == nil {
		return written
	}

	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// Recover returns Echo's panic recovery middleware.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every returned error ends up here and is rendered as an errs.HTTPError.
// Errors that are neither ours nor Echo's are classified by storeerr.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				err = errs.NewNotFoundError("Route not found", false, nil).
					WithDetail(http.StatusText(http.StatusNotFound))
			}
		} else {
			err = storeerr.HandleError(err)
		}
	}

	var echoErr *echo.HTTPError
	var response errs.HTTPError

	switch {
	case errors.As(err, &httpErr):
		response = *httpErr

	case errors.As(err, &echoErr):
		response.Status = echoErr.Code
		response.Code = errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code))

		if msg, ok := echoErr.Message.(string); ok {
			response.Message = msg
		} else {
			response.Message = http.StatusText(echoErr.Code)
		}
		response.Detail = response.Message

	default:
		response = *errs.NewInternalServerError()
	}

	logger := GetLogger(c)
	event := logger.Error()
	if response.Status < http.StatusInternalServerError {
		event = logger.Warn()
	}

	event.Stack().
		Err(originalErr).
		Int("status", response.Status).
		Str("error_code", response.Code).
		Msg(response.Message)

	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(response.Status)
			return
		}
		_ = c.JSON(response.Status, response)
	}
}
