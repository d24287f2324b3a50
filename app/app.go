package app

import (
	"log/slog"
	"notes-api/database"
	"notes-api/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB        *database.DB
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(db *database.DB, logger *slog.Logger) *App {
	return &App{
		DB:        db,
		Validator: validator.New(),
		Logger:    logger,
	}
}
