package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "catalogproxy/internal/log"
)

// badRequest answers 400 with a client-facing message.
func badRequest(c *fiber.Ctx, field, msg string) error {
	c.Status(fiber.StatusBadRequest)
	applog.Security(c, "validation.fail", map[string]any{"field": field})
	return c.JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, action string, fields map[string]any) error {
	c.Status(fiber.StatusNotFound)
	applog.Info(c, action, fields)
	return c.JSON(fiber.Map{"error": "Product not found."})
}

// serverError logs err under action and answers 500 with the root cause as details.
func serverError(c *fiber.Ctx, action, msg string, err error) error {
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, action, err, nil)
	return c.JSON(fiber.Map{
		"error":   msg,
		"details": cause(err).Error(),
	})
}

func cause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// ErrorHandler is the app-level fallback for errors no handler answered.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	c.Status(code)
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
		return c.JSON(fiber.Map{"error": "Internal server error."})
	}
	return c.JSON(fiber.Map{"error": fe.Message})
}

// NotFoundRoute answers any unmatched path.
func NotFoundRoute(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found."})
}
