package handlers

import (
	"github.com/artisanhub/backend/internal/http/dto"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	log            *zap.Logger
}

func NewProductHandler(catalogService *services.CatalogService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{catalogService: catalogService, log: log}
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request", Kind: models.KindInvalidInput})
	}

	if req.Title == "" || req.Price == "" || req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "title, price, and description are required", Kind: models.KindInvalidInput})
	}

	product, err := h.catalogService.Create(c.Context(), models.ProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Hashtags:    req.Hashtags,
		Images:      req.Images,
	})
	if err != nil {
		h.log.Error("create product failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: dto.ProductCreatedResponse{ProductID: product.ID}})
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.List(c.Context())
	if err != nil {
		h.log.Error("list products failed", zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: products})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalogService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: product})
}
