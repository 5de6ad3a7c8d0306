package handlers

import (
	"github.com/artisanhub/backend/internal/adgen"
	"github.com/artisanhub/backend/internal/http/dto"
	"github.com/artisanhub/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdHandler struct {
	log *zap.Logger
}

func NewAdHandler(log *zap.Logger) *AdHandler {
	return &AdHandler{log: log}
}

// GenerateAds is a pure transform over the submitted product; nothing is
// persisted until one of the variants is run.
func (h *AdHandler) GenerateAds(c *fiber.Ctx) error {
	var req dto.GenerateAdsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request", Kind: models.KindInvalidInput})
	}

	ads, err := adgen.Generate(req.Product, req.Hashtags, req.CustomCaption)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: ads})
}
