package handler

import "github.com/gofiber/fiber/v3"

func success(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func validationFailed(c fiber.Ctx, details []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": details,
	})
}

func sendFailure(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to send email. Please try again later.",
	})
}

// MethodNotAllowed is the fallback for non-POST verbs on form routes.
// Bare OPTIONS probes get an empty success, matching the preflight
// behavior the CORS middleware provides for real preflights.
func MethodNotAllowed(c fiber.Ctx) error {
	if c.Method() == fiber.MethodOptions {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
}
