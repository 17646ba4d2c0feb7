package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/league-build-planner/internal/api"
	"github.com/dom/league-build-planner/internal/config"
	"github.com/dom/league-build-planner/internal/fandom"
	"github.com/dom/league-build-planner/internal/repository/gormrepo"
	"github.com/dom/league-build-planner/internal/seed"
	"github.com/dom/league-build-planner/internal/service"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	root := &cli.Command{
		Name:  "server",
		Usage: "League build planner and fan-content API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML config file",
				Sources: cli.EnvVars("CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, cmd.String("config"))
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server (default)",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, cmd.String("config"))
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update all tables and exit",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, logger, db, err := bootstrap(cmd.String("config"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := migrate(db); err != nil {
				return err
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the built-in champion, item and fan-content catalog",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, logger, db, err := bootstrap(cmd.String("config"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := migrate(db); err != nil {
				return err
			}

			catalog, err := seed.DefaultCatalog()
			if err != nil {
				return err
			}
			_, err = seed.Run(ctx, db, catalog, logger)
			return err
		},
	}
}

// bootstrap loads configuration, builds the logger and opens the database
func bootstrap(configPath string) (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build logger: %w", err)
	}

	db, err := gormrepo.NewConnection(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return cfg, logger, db, nil
}

func migrate(db *gorm.DB) error {
	if err := gormrepo.Migrate(db); err != nil {
		return err
	}
	return fandom.Migrate(db)
}

func runServer(ctx context.Context, configPath string) error {
	cfg, logger, db, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := migrate(db); err != nil {
		return err
	}

	// Initialize repositories
	repos := gormrepo.NewRepositories(db)

	// Initialize services
	services := service.NewServices(repos, fandom.NewRepository(db), cfg)

	// Initialize router
	router := api.NewRouter(services, cfg, logger)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("driver", cfg.DatabaseDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
