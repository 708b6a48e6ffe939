package handler

import (
	"github.com/gofiber/fiber/v3"

	domain "github.com/habitacasa/habitacasa_backend/internal/commission"
	"github.com/habitacasa/habitacasa_backend/pkg/pagination"
)

// Every response uses the same envelope: success flag, human-readable
// message, optional data payload and optional field-level errors.

func ok(c fiber.Ctx, message string, data any) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func created(c fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func paginated[T any](c fiber.Ctx, message string, page pagination.Page[T]) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"message":    message,
		"data":       page.Data,
		"pagination": page.Pagination,
	})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(fiber.Map{"success": false, "message": msg})
}

func validationFailed(c fiber.Ctx, violations []domain.Violation) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "validation failed",
		"errors":  violations,
	})
}

func hasActiveDependents(c fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "commission rule has active dependents",
		"errors": []domain.Violation{
			{Field: "status", Message: "rule is referenced by active distribution rules"},
		},
	})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).
		JSON(fiber.Map{"success": false, "message": msg})
}

func tooManyRequests(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusTooManyRequests).
		JSON(fiber.Map{"success": false, "message": msg})
}

func internalError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).
		JSON(fiber.Map{"success": false, "message": "internal server error"})
}
