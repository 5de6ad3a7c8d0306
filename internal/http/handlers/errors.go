package handlers

import (
	"github.com/artisanhub/backend/internal/http/dto"
	"github.com/artisanhub/backend/internal/middleware"
	"github.com/artisanhub/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the error kind to an HTTP status while keeping the kind
// itself in the body, so clients don't have to reverse-map status codes.
func respondError(c *fiber.Ctx, err error) error {
	kind := models.ErrorKind(err)

	status := fiber.StatusInternalServerError
	switch kind {
	case models.KindInvalidInput:
		status = fiber.StatusBadRequest
	case models.KindNotFound:
		status = fiber.StatusNotFound
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Error:     err.Error(),
		Kind:      kind,
		RequestID: middleware.GetRequestID(c),
	})
}
