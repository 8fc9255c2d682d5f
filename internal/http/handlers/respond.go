package handlers

import (
	"github.com/gofiber/fiber/v2"

	"harvesthub/internal/apperr"
	applog "harvesthub/internal/log"
)

// The wire envelope: {"success":true,"data":...} on the happy path,
// {"error":true,"message":...} on failure.

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func okMsg(c *fiber.Ctx, data any, msg string) error {
	return c.JSON(fiber.Map{"success": true, "data": data, "message": msg})
}

func created(c *fiber.Ctx, data any, msg string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data, "message": msg})
}

// fail maps the error taxonomy onto statuses. Persistence causes are logged
// but never leak into the response body.
func fail(c *fiber.Ctx, err error) error {
	if e, isApp := apperr.As(err); isApp {
		status := apperr.HTTPStatus(e.Kind)
		body := fiber.Map{"error": true, "message": e.Message}
		if len(e.Fields) > 0 {
			body["errors"] = e.Fields
		}
		if e.Kind == apperr.KindPersistence {
			applog.Error(c, "request.persistence", err, nil)
			body["message"] = "Internal server error"
		}
		return c.Status(status).JSON(body)
	}
	applog.Error(c, "request.fail", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": true, "message": "Internal server error",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": msg})
}
