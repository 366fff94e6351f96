package handlers

import (
	"notes-labels/app"

	"github.com/gofiber/fiber/v2"
)

func noteAndLabelIDs(c *fiber.Ctx) (noteID, labelID int64, ok bool) {
	if noteID, ok = paramID(c, "id"); !ok {
		return 0, 0, false
	}
	if labelID, ok = paramID(c, "labelId"); !ok {
		return 0, 0, false
	}
	return noteID, labelID, true
}

// ListNoteLabels returns the labels attached to a note
func ListNoteLabels(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "note ID must be a positive integer")
		}

		labels, err := a.NoteService.Labels(c.UserContext(), id)
		if err != nil {
			return respondError(c, "Failed to fetch labels", err)
		}

		return success(c, fiber.Map{"labels": labels})
	}
}

// GetNoteLabel returns one label of a note
func GetNoteLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, labelID, ok := noteAndLabelIDs(c)
		if !ok {
			return badRequest(c, "note and label IDs must be positive integers")
		}

		label, err := a.NoteService.Label(c.UserContext(), noteID, labelID)
		if err != nil {
			return respondError(c, "Failed to fetch label", err)
		}

		return success(c, fiber.Map{"label": label})
	}
}

// AttachLabel adds a label to a note
func AttachLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, labelID, ok := noteAndLabelIDs(c)
		if !ok {
			return badRequest(c, "note and label IDs must be positive integers")
		}

		if err := a.NoteService.AttachLabel(c.UserContext(), noteID, labelID); err != nil {
			return respondError(c, "Failed to attach label", err)
		}

		return success(c, fiber.Map{"message": "Label attached"})
	}
}

// DetachLabel removes a label from a note
func DetachLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, labelID, ok := noteAndLabelIDs(c)
		if !ok {
			return badRequest(c, "note and label IDs must be positive integers")
		}

		if err := a.NoteService.DetachLabel(c.UserContext(), noteID, labelID); err != nil {
			return respondError(c, "Failed to detach label", err)
		}

		return success(c, fiber.Map{"message": "Label detached"})
	}
}
