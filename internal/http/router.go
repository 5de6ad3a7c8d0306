package http

import (
	"time"

	"github.com/artisanhub/backend/internal/config"
	"github.com/artisanhub/backend/internal/http/handlers"
	"github.com/artisanhub/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	productHandler *handlers.ProductHandler,
	adHandler *handlers.AdHandler,
	campaignHandler *handlers.CampaignHandler,
	profileHandler *handlers.ProfileHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	dashboardHandler *handlers.DashboardHandler,
	linkPreviewHandler *handlers.LinkPreviewHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Products
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products", productHandler.ListProducts)
	api.Get("/products/:id", productHandler.GetProduct)

	// Ads
	api.Post("/ads/generate", adHandler.GenerateAds)
	api.Post("/ads/run", campaignHandler.RunAd)

	// Campaigns
	api.Get("/campaigns", campaignHandler.ListCampaigns)

	// Profile
	api.Get("/profile", profileHandler.GetProfile)
	api.Post("/profile", profileHandler.UpdateProfile)

	// Analytics + dashboard
	api.Get("/analytics", analyticsHandler.GetAnalytics)
	api.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Upload helper
	api.Get("/link-preview", linkPreviewHandler.GetLinkPreview)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
