package services

import (
	"context"
	"time"

	"github.com/artisanhub/backend/internal/events"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/productstore"
	"github.com/artisanhub/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService owns the product lifecycle: id assignment, the single
// persisted write, and keeping the shared in-memory collection in sync.
type CatalogService struct {
	productRepo *repositories.ProductRepo
	clientStore *productstore.Store
	publisher   events.Publisher
	log         *zap.Logger
}

func NewCatalogService(
	productRepo *repositories.ProductRepo,
	clientStore *productstore.Store,
	publisher events.Publisher,
	log *zap.Logger,
) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		clientStore: clientStore,
		publisher:   publisher,
		log:         log,
	}
}

func (s *CatalogService) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	images := input.Images
	if images == nil {
		images = []string{}
	}

	p := &models.Product{
		ID:          repositories.ProductKeyPrefix + uuid.NewString(),
		Title:       input.Title,
		Price:       input.Price,
		Description: input.Description,
		Hashtags:    input.Hashtags,
		Images:      images,
		CreatedAt:   time.Now().UTC(),
		Status:      models.ProductStatusActive,
		Views:       0,
	}

	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.clientStore.Add(*p)

	_ = s.publisher.Publish(ctx, events.StreamActivity, events.Event{
		Type: events.EventProductCreated,
		Payload: map[string]any{
			"productId": p.ID,
			"title":     p.Title,
		},
	})

	s.log.Info("product created", zap.String("product_id", p.ID), zap.String("title", p.Title))
	return p, nil
}

// List returns the persisted catalogue in no guaranteed order; callers
// needing "most recent first" sort by createdAt themselves.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}
