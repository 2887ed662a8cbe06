// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the document store (nil when not configured or unreachable at startup)
//   - Prometheus metrics
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/nettoyage-lausanne/internal/config"
	"github.com/deppfellow/nettoyage-lausanne/internal/database"
	loggerPkg "github.com/deppfellow/nettoyage-lausanne/internal/logger"
	"github.com/deppfellow/nettoyage-lausanne/internal/metrics"
)

// indexTimeout bounds index creation at startup.
const indexTimeout = 15 * time.Second

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. It holds:
//   - the config
//   - the logger(s)
//   - the document store
//   - the metrics registry
//   - an internal *http.Server used to listen and serve requests
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	// DB is nil when the store could not be set up. Every consumer checks
	// for that instead of failing at startup.
	DB database.Store

	Metrics *metrics.Metrics

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start.
//
// A store that is not configured, or whose URI is rejected by the driver,
// leaves DB nil and the process keeps starting: the catalog and the
// diagnostic endpoint stay available and submissions fail with a clear error.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *Server {
	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Metrics:       metrics.New(),
	}

	db, err := database.New(cfg, logger)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		logger.Warn().Msg("DATABASE_URL or DATABASE_NAME not set, running without a document store")
	case err != nil:
		logger.Error().Err(err).Msg("failed to initialize database, running without a document store")
	default:
		ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
		if err := db.EnsureIndexes(ctx, logger); err != nil {
			logger.Warn().Err(err).Msg("failed to ensure database indexes")
		}
		cancel()

		// Only assign a non-nil *Database so DB == nil keeps meaning "no store".
		server.DB = db
	}

	return server
}

// HasStore reports whether a document store is available.
func (s *Server) HasStore() bool {
	return s.DB != nil
}

// SetupHTTPServer configures the internal net/http server.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores int values, interpreted here as seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server.
//
// It requires SetupHTTPServer to be called first. It blocks until the
// server stops; http.ErrServerClosed is returned after Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Bool("store", s.HasStore()).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// It stops the HTTP server (in-flight requests finish until ctx expires)
// and then disconnects the store.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(ctx); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	return nil
}
