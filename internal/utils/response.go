package utils

import (
	"errors"

	domain "walletstack/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": message})
}

// Forbidden sends a JSON error response with status 403.
func Forbidden(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusForbidden, fiber.Map{"error": message})
}

// NotFound sends a JSON error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, fiber.Map{"error": message})
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": message})
}

// DomainError maps a domain error kind to its HTTP status and sends it.
// Unclassified errors become 500 without leaking internals.
func DomainError(c *fiber.Ctx, err error) error {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		return InternalError(c, "internal server error")
	}

	status := fiber.StatusInternalServerError
	switch de.Kind {
	case domain.KindNotFound:
		status = fiber.StatusNotFound
	case domain.KindInvalidOperation:
		status = fiber.StatusUnprocessableEntity
	case domain.KindUnauthorized:
		status = fiber.StatusUnauthorized
	case domain.KindForbidden:
		status = fiber.StatusForbidden
	case domain.KindConflict:
		status = fiber.StatusConflict
	case domain.KindUpstreamFailure:
		status = fiber.StatusBadGateway
	}
	return Respond(c, status, fiber.Map{"error": de.Message, "code": de.Code})
}
