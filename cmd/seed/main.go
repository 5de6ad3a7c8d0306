// Seeds the catalogue with sample products for demos and local development.
// Run with -dry-run to print what would be created without touching the
// database.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/artisanhub/backend/internal/config"
	"github.com/artisanhub/backend/internal/db"
	"github.com/artisanhub/backend/internal/events"
	"github.com/artisanhub/backend/internal/kv"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/productstore"
	"github.com/artisanhub/backend/internal/repositories"
	"github.com/artisanhub/backend/internal/services"
	"go.uber.org/zap"
)

var sampleProducts = []models.ProductInput{
	{
		Title:       "Sunset Over Hills",
		Price:       "150",
		Description: "A warm abstract sunset over hills, painted in layered acrylics with heavy texture. The piece shifts from deep amber to soft violet as the light changes.",
		Hashtags:    "#art #abstract #sunset #acrylic",
		Images:      []string{"https://images.unsplash.com/photo-1567366865504-ffd4cc9ce7bc?w=1080"},
	},
	{
		Title:       "Harbor Mist",
		Price:       "220",
		Description: "Muted blues and greys capture an early morning harbor before the fog lifts. Oil on canvas, 40x60cm.",
		Hashtags:    "#art #oilpainting #seascape",
		Images:      []string{"https://images.unsplash.com/photo-1646846565807-61fd42034c3b?w=1080"},
	},
	{
		Title:       "Wildflower Study No. 3",
		Price:       "85",
		Description: "Loose watercolor study of meadow wildflowers. Part of an ongoing botanical series.",
		Hashtags:    "#watercolor #botanical #original",
		Images:      []string{},
	},
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, events.Event) error { return nil }

func main() {
	dryRun := flag.Bool("dry-run", false, "print without writing to the database")
	flag.Parse()

	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx := context.Background()

	var store kv.Store
	if *dryRun {
		store = kv.NewMemoryStore()
	} else {
		pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
		if err != nil {
			log.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer pool.Close()

		if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		store = kv.NewPostgresStore(pool)
	}

	productRepo := repositories.NewProductRepo(store)
	catalog := services.NewCatalogService(productRepo, productstore.New(), nopPublisher{}, log)

	for _, input := range sampleProducts {
		p, err := catalog.Create(ctx, input)
		if err != nil {
			log.Fatal("seed product failed", zap.String("title", input.Title), zap.Error(err))
		}
		fmt.Printf("created %s  %q\n", p.ID, p.Title)
	}

	log.Info("seed complete", zap.Int("products", len(sampleProducts)), zap.Bool("dry_run", *dryRun))
}
