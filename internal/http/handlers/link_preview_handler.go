package handlers

import (
	"errors"

	"github.com/artisanhub/backend/internal/http/dto"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/pagemeta"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LinkPreviewHandler struct {
	parser *pagemeta.Parser
	log    *zap.Logger
}

func NewLinkPreviewHandler(parser *pagemeta.Parser, log *zap.Logger) *LinkPreviewHandler {
	return &LinkPreviewHandler{parser: parser, log: log}
}

func (h *LinkPreviewHandler) GetLinkPreview(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "url query parameter is required", Kind: models.KindInvalidInput})
	}

	meta, err := h.parser.Fetch(c.Context(), rawURL)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			return respondError(c, err)
		}
		h.log.Warn("link preview fetch failed", zap.String("url", rawURL), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "failed to fetch page"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: meta})
}
