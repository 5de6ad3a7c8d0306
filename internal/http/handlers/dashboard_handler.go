package handlers

import (
	"github.com/artisanhub/backend/internal/http/dto"
	"github.com/artisanhub/backend/internal/productstore"
	"github.com/gofiber/fiber/v2"
)

const recentProductsLimit = 5

// DashboardHandler derives its numbers from the shared product collection,
// the same one the ad picker and recent-products panel read.
type DashboardHandler struct {
	clientStore *productstore.Store
}

func NewDashboardHandler(clientStore *productstore.Store) *DashboardHandler {
	return &DashboardHandler{clientStore: clientStore}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	products := h.clientStore.Products()

	recent := products
	if len(recent) > recentProductsLimit {
		recent = recent[:recentProductsLimit]
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.DashboardStatsResponse{
		TotalProducts:  len(products),
		TotalViews:     h.clientStore.TotalViews(),
		RecentProducts: recent,
	}})
}
