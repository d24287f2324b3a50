package setup

import (
	"notes-api/app"
	"notes-api/handlers"
	"notes-api/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/", handlers.Root)
	fiberApp.Get("/health", handlers.Health(application))
	fiberApp.Get("/dbtime", handlers.DBTime(application))

	// Every /notes request runs on its own pooled connection
	notes := fiberApp.Group("/notes", middleware.DBSession(application.DB))

	notes.Post("/", handlers.CreateNote(application))
	notes.Get("/", handlers.ListNotes(application))
	notes.Get("/:id", handlers.GetNote(application))
	notes.Put("/:id", handlers.UpdateNote(application))
	notes.Delete("/:id", handlers.DeleteNote(application))
}
