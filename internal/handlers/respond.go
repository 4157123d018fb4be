package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zamanlab/bank-advisor-be/internal/services"
	"github.com/zamanlab/bank-advisor-be/internal/session"
)

// backendFailureMessage is what callers see when the language model is
// unreachable. Kept generic; the real error is logged server-side.
const backendFailureMessage = "The assistant is temporarily unavailable, please try again"

// respondError maps core errors to HTTP statuses: absent sessions and
// products are 404, caller mistakes 400, everything else is treated as a
// backend failure and reported with a retry suggestion.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": backendFailureMessage})
	}
}
