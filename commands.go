package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notes-labels/config"
	"notes-labels/config/setup"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the notes and labels JSON API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		db, err := setup.InitDatabase(cmd.Context(), config.AppConfig, logger)
		if err != nil {
			return err
		}
		setup.Shutdown(db, logger)

		logger.Info("migrations applied", "path", config.AppConfig.DBPath)
		return nil
	},
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	db, err := setup.InitDatabase(cmd.Context(), config.AppConfig, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		return err
	}

	application := setup.InitApp(db, logger)

	app := setup.NewFiberApp(config.AppConfig, logger)
	setup.ApplyMiddleware(app, config.AppConfig, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + config.AppConfig.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server failed", "error", err)
		setup.Shutdown(db, logger)
		return err
	case <-quit:
	}

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(db, logger)
	logger.Info("server stopped")
	return nil
}
