package handlers

import (
	"time"

	"github.com/artisanhub/backend/internal/http/dto"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileRepo *repositories.ProfileRepo
	log         *zap.Logger
}

func NewProfileHandler(profileRepo *repositories.ProfileRepo, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo, log: log}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.profileRepo.Get(c.Context())
	if err != nil {
		h.log.Error("get profile failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request", Kind: models.KindInvalidInput})
	}

	connections := req.SocialConnections
	if connections == nil {
		connections = map[string]any{}
	}

	now := time.Now().UTC()
	profile := models.Profile{
		Name:              req.Name,
		Email:             req.Email,
		Bio:               req.Bio,
		SocialConnections: connections,
		UpdatedAt:         &now,
	}

	if err := h.profileRepo.Set(c.Context(), profile); err != nil {
		h.log.Error("update profile failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: profile})
}
