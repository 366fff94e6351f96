package setup

import (
	"errors"
	"log/slog"
	"time"

	"notes-labels/config"

	"github.com/gofiber/fiber/v2"
)

// bodyLimit caps request bodies; note bodies are plain text
const bodyLimit = 1 << 20

// NewFiberApp creates the Fiber application serving the notes API
func NewFiberApp(cfg *config.Config, logger *slog.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "notes-labels",
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		BodyLimit:             bodyLimit,
		DisableStartupMessage: cfg.Env == "production",
		ErrorHandler:          CustomErrorHandler(logger),
	})
}

// CustomErrorHandler renders errors that escape handlers as JSON.
// Unknown routes and other client errors are logged at WARN.
func CustomErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}
		if code == fiber.StatusNotFound {
			message = "Route not found"
		}

		requestID, _ := c.Locals("requestID").(string)

		level := slog.LevelError
		if code < fiber.StatusInternalServerError {
			level = slog.LevelWarn
		}
		logger.Log(c.UserContext(), level, "request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
