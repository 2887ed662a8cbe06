package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/nettoyage-lausanne/internal/config"
	"github.com/deppfellow/nettoyage-lausanne/internal/handler"
	"github.com/deppfellow/nettoyage-lausanne/internal/logger"
	"github.com/deppfellow/nettoyage-lausanne/internal/repository"
	"github.com/deppfellow/nettoyage-lausanne/internal/router"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
	"github.com/deppfellow/nettoyage-lausanne/internal/service"
)

// DefaultContextTimeout bounds graceful shutdown, in seconds.
const DefaultContextTimeout = 30

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv := server.New(cfg, &log, loggerService)

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultContextTimeout*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}
