package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // SHOP_TIMEZONE must resolve on hosts without zoneinfo

	"foodbot/cmd"
	"foodbot/internal/adapters/out/postgres"
	"foodbot/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns every resource it opens, so the deferred cleanups finish before
// main exits.
func run() error {
	envFile := pflag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	port := pflag.String("port", "", "HTTP port, overrides HTTP_PORT")
	pflag.Parse()

	if err := loadEnvFile(*envFile, pflag.CommandLine.Changed("env-file")); err != nil {
		return err
	}

	configs := cmd.LoadConfig(os.Getenv)
	if *port != "" {
		configs.HTTPPort = *port
	}

	logger, err := newLogger(configs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(configs.DSN(), postgres.Options{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	if err = orderrepo.Migrate(ctx, db); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("error configuring jobs: %w", err)
	}
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("error starting jobs: %w", err)
	}
	defer jobManager.StopAll()

	return serveHTTP(ctx, app, configs.HTTPPort, logger)
}

// loadEnvFile loads the dotenv file. A missing default file is fine; a
// missing file the user asked for is an error.
func loadEnvFile(path string, explicit bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading %s file: %w", path, err)
}

func newLogger(configs cmd.Config) (*slog.Logger, error) {
	level, err := configs.SlogLevel()
	if err != nil {
		return nil, fmt.Errorf("error reading log level: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, nil
}

// serveHTTP runs the web server until ctx is cancelled or the listener
// fails, then shuts it down gracefully.
func serveHTTP(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateHTTPRouter()
	if err != nil {
		return fmt.Errorf("error building HTTP router: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "Starting HTTP server", "port", port)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}
	return nil
}
