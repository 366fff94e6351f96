package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"notes-labels/database"
	"notes-labels/services"
	"notes-labels/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var details validator.ValidationErrors
	if errors.As(err, &details) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}
	return badRequest(c, "Validation failed")
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// respondError maps service and store errors onto HTTP statuses.
func respondError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, "Note not found")
	case errors.Is(err, services.ErrLabelNotFound):
		return notFound(c, "Label not found")
	case errors.Is(err, services.ErrLabelNotAttached):
		return notFound(c, "Label is not attached to this note")
	case errors.Is(err, database.ErrNotFound):
		return notFound(c, "Not found")
	case errors.Is(err, services.ErrInvalidName):
		return badRequest(c, err.Error())
	case database.IsConstraintViolation(err):
		return conflict(c, message+": constraint violation")
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

// paramID reads a positive integer route parameter.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
