package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/blog-api/internal/config"
	"github.com/deppfellow/blog-api/internal/database"
	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/logger"
	"github.com/deppfellow/blog-api/internal/repository"
	"github.com/deppfellow/blog-api/internal/router"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds how long in-flight requests may take after a signal.
const shutdownTimeout = 30 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blog-api",
		Short:         "Users, posts and comments REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run migrations (outside local) and serve HTTP until interrupted",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate(cmd.Context())
			},
		},
	)

	return root
}

// bootstrap loads config and builds the logger. The returned cleanup
// flushes New Relic.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Logger{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, log, loggerService.Shutdown, nil
}

func migrate(ctx context.Context) error {
	cfg, _, log, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	return database.Migrate(ctx, &log, cfg)
}

func serve(ctx context.Context) error {
	cfg, loggerService, log, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	// Local setups run migrations by hand with `blog-api migrate`.
	if cfg.Primary.Env != "local" {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		return fmt.Errorf("could not create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
