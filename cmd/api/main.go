package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/artisanhub/backend/internal/config"
	"github.com/artisanhub/backend/internal/db"
	"github.com/artisanhub/backend/internal/events"
	apphttp "github.com/artisanhub/backend/internal/http"
	"github.com/artisanhub/backend/internal/http/handlers"
	"github.com/artisanhub/backend/internal/kv"
	"github.com/artisanhub/backend/internal/pagemeta"
	"github.com/artisanhub/backend/internal/productstore"
	"github.com/artisanhub/backend/internal/repositories"
	"github.com/artisanhub/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Store + repositories
	store := kv.NewPostgresStore(pool)
	productRepo := repositories.NewProductRepo(store)
	campaignRepo := repositories.NewCampaignRepo(store)
	profileRepo := repositories.NewProfileRepo(store)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Shared in-memory product collection, warmed from the catalogue so the
	// dashboard survives restarts.
	clientStore := productstore.New()
	if err := warmClientStore(ctx, productRepo, clientStore); err != nil {
		log.Warn("failed to warm product store", zap.Error(err))
	}

	// Services
	catalogService := services.NewCatalogService(productRepo, clientStore, publisher, log)
	campaignService := services.NewCampaignService(campaignRepo, publisher, log)
	previewParser := pagemeta.NewParser(cfg.LinkPreviewTimeoutMS, cfg.LinkPreviewMaxRetries, log)

	// Handlers
	productHandler := handlers.NewProductHandler(catalogService, log)
	adHandler := handlers.NewAdHandler(log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	profileHandler := handlers.NewProfileHandler(profileRepo, log)
	analyticsHandler := handlers.NewAnalyticsHandler()
	dashboardHandler := handlers.NewDashboardHandler(clientStore)
	linkPreviewHandler := handlers.NewLinkPreviewHandler(previewParser, log)
	wsHub := handlers.NewWSHub(subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, productHandler, adHandler, campaignHandler, profileHandler, analyticsHandler, dashboardHandler, linkPreviewHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

func warmClientStore(ctx context.Context, repo *repositories.ProductRepo, store *productstore.Store) error {
	products, err := repo.List(ctx)
	if err != nil {
		return err
	}
	// Add prepends, so replay oldest first to keep most-recent-first order.
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})
	for _, p := range products {
		store.Add(p)
	}
	return nil
}
