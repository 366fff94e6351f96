package handlers

import (
	"notes-labels/app"
	"notes-labels/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotes returns every note
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.NoteService.List(c.UserContext())
		if err != nil {
			return respondError(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// GetNote returns a note with its labels
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		note, err := a.NoteService.GetWithLabels(c.UserContext(), id)
		if err != nil {
			return respondError(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// CreateNote creates a note; body is optional
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NewNote
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.NoteService.Create(c.UserContext(), req)
		if err != nil {
			return respondError(c, "Failed to create note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// UpdateNote overwrites title and body of a note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.NoteService.Update(c.UserContext(), id, req)
		if err != nil {
			return respondError(c, "Failed to update note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// DeleteNote deletes a note
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		if err := a.NoteService.Delete(c.UserContext(), id); err != nil {
			return respondError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"message": "Note deleted"})
	}
}
