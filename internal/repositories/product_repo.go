package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/artisanhub/backend/internal/kv"
	"github.com/artisanhub/backend/internal/models"
)

// ProductKeyPrefix partitions the shared keyspace. ProductRepo is the sole
// writer under this prefix and rejects keys outside it.
const ProductKeyPrefix = "product_"

type ProductRepo struct {
	store kv.Store
}

func NewProductRepo(store kv.Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	if !strings.HasPrefix(p.ID, ProductKeyPrefix) {
		return fmt.Errorf("%w: product id %q outside the %q keyspace", models.ErrInvalidInput, p.ID, ProductKeyPrefix)
	}
	if err := r.store.Set(ctx, p.ID, p); err != nil {
		return fmt.Errorf("%w: store product %s: %v", models.ErrPersistence, p.ID, err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.store.Get(ctx, id, &p)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, fmt.Errorf("%w: product %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load product %s: %v", models.ErrPersistence, id, err)
	}
	return &p, nil
}

// List returns all products in no guaranteed order.
func (r *ProductRepo) List(ctx context.Context) ([]models.Product, error) {
	values, err := r.store.GetByPrefix(ctx, ProductKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: scan products: %v", models.ErrPersistence, err)
	}

	products := make([]models.Product, 0, len(values))
	for _, data := range values {
		var p models.Product
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("%w: decode product: %v", models.ErrPersistence, err)
		}
		products = append(products, p)
	}
	return products, nil
}
