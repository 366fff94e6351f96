package setup

import (
	"notes-labels/app"
	"notes-labels/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		if err := application.DB.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := fiberApp.Group("/api")

	labels := api.Group("/labels")
	labels.Get("/", handlers.ListLabels(application))
	labels.Post("/", handlers.CreateLabel(application))
	labels.Get("/:id", handlers.GetLabel(application))
	labels.Put("/:id", handlers.UpdateLabel(application))
	labels.Delete("/:id", handlers.DeleteLabel(application))
	labels.Get("/:id/notes", handlers.ListLabelNotes(application))

	notes := api.Group("/notes")
	notes.Get("/", handlers.ListNotes(application))
	notes.Post("/", handlers.CreateNote(application))
	notes.Get("/:id", handlers.GetNote(application))
	notes.Put("/:id", handlers.UpdateNote(application))
	notes.Delete("/:id", handlers.DeleteNote(application))
	notes.Get("/:id/labels", handlers.ListNoteLabels(application))
	notes.Get("/:id/labels/:labelId", handlers.GetNoteLabel(application))
	notes.Put("/:id/labels/:labelId", handlers.AttachLabel(application))
	notes.Delete("/:id/labels/:labelId", handlers.DetachLabel(application))
}
