package handlers

import (
	"github.com/artisanhub/backend/internal/http/dto"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) RunAd(c *fiber.Ctx) error {
	var req dto.RunAdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request", Kind: models.KindInvalidInput})
	}

	campaign, message, err := h.campaignService.Run(c.Context(), req.AdID, req.Platforms)
	if err != nil {
		h.log.Error("run campaign failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: dto.RunAdResponse{
		CampaignID: campaign.ID,
		Message:    message,
	}})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignService.List(c.Context())
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}
