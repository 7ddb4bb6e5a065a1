package handlers

import (
	"action-notes/database"
	"action-notes/services"
	"action-notes/validator"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data any) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func noContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, errs validator.ValidationErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": errs,
	})
}

func serviceUnavailable(c *fiber.Ctx, message string, err error) error {
	slog.Warn("upstream unavailable",
		"request_id", requestID(c),
		"path", c.Path(),
		"error", err,
	)
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": message})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return serverError(c, message)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestID").(string); ok {
		return id
	}
	return ""
}

// paramID parses the :id route parameter
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, false
	}
	return int64(id), true
}

// handleError maps service and store errors onto HTTP responses. message is
// used for anything unexpected.
func handleError(c *fiber.Ctx, err error, message string) error {
	var verrs validator.ValidationErrors
	var sortErr *database.InvalidSortError

	switch {
	case errors.As(err, &verrs):
		return validationError(c, verrs)
	case errors.As(err, &sortErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   sortErr.Error(),
			"allowed": sortErr.Allowed,
		})
	case errors.Is(err, services.ErrNoteNotFound):
		return notFound(c, "Note not found")
	case errors.Is(err, services.ErrActionItemNotFound):
		return notFound(c, "Action item not found")
	case errors.Is(err, services.ErrInvalidNoteReference):
		return validationError(c, validator.FieldError("note_id", "exists", err.Error()))
	case errors.Is(err, services.ErrExtractionFailed):
		return serviceUnavailable(c, "Action item extraction is unavailable, try again later", err)
	default:
		return serverErrorWithDetails(c, message, err)
	}
}
