package setup

import (
	"context"
	"fmt"
	"log/slog"
	"notes-api/app"
	"notes-api/database"
	"time"
)

// InitDatabase opens the store, checks that it is reachable and ensures
// the schema exists. Any failure here is fatal for the process.
func InitDatabase(ctx context.Context, databaseURL string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(databaseURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "driver", db.Driver())
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	application := app.New(db, logger)
	logger.Info("application initialized with dependency injection")
	return application
}

// Shutdown releases what InitDatabase opened
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
