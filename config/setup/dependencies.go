package setup

import (
	"context"
	"log/slog"

	"notes-labels/app"
	"notes-labels/config"
	"notes-labels/database"
)

// InitDatabase opens the connection pool and runs migrations
func InitDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(cfg.DBPath, database.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		BusyTimeout:  cfg.DBBusyTimeout,
	})
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized",
		"path", cfg.DBPath,
		"max_open_conns", cfg.DBMaxOpenConns,
	)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	application := app.New(db, database.SystemClock, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown closes the connection pool
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
