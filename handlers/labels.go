package handlers

import (
	"notes-labels/app"
	"notes-labels/models"

	"github.com/gofiber/fiber/v2"
)

// ListLabels returns every label
func ListLabels(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		labels, err := a.LabelService.List(c.UserContext())
		if err != nil {
			return respondError(c, "Failed to fetch labels", err)
		}

		return success(c, fiber.Map{"labels": labels})
	}
}

// GetLabel returns a single label
func GetLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "label ID must be a positive integer")
		}

		label, err := a.LabelService.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, "Failed to fetch label", err)
		}

		return success(c, fiber.Map{"label": label})
	}
}

// CreateLabel creates a new label
func CreateLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NewLabel
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		label, err := a.LabelService.Create(c.UserContext(), req.Name)
		if err != nil {
			return respondError(c, "Failed to create label", err)
		}

		return created(c, fiber.Map{"label": label})
	}
}

// UpdateLabel renames a label
func UpdateLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "label ID must be a positive integer")
		}

		var req models.UpdateLabelRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		label, err := a.LabelService.Rename(c.UserContext(), id, req.Name)
		if err != nil {
			return respondError(c, "Failed to update label", err)
		}

		return success(c, fiber.Map{"label": label})
	}
}

// DeleteLabel deletes a label and detaches it from every note
func DeleteLabel(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "label ID must be a positive integer")
		}

		if err := a.LabelService.Delete(c.UserContext(), id); err != nil {
			return respondError(c, "Failed to delete label", err)
		}

		return success(c, fiber.Map{"message": "Label deleted"})
	}
}

// ListLabelNotes returns the notes carrying a label
func ListLabelNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "label ID must be a positive integer")
		}

		notes, err := a.LabelService.Notes(c.UserContext(), id)
		if err != nil {
			return respondError(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}
