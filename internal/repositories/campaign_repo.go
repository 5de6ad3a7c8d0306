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

// CampaignKeyPrefix is disjoint from ProductKeyPrefix by construction, so
// campaigns and products can never collide in the shared keyspace.
const CampaignKeyPrefix = "campaign_"

type CampaignRepo struct {
	store kv.Store
}

func NewCampaignRepo(store kv.Store) *CampaignRepo {
	return &CampaignRepo{store: store}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	if !strings.HasPrefix(c.ID, CampaignKeyPrefix) {
		return fmt.Errorf("%w: campaign id %q outside the %q keyspace", models.ErrInvalidInput, c.ID, CampaignKeyPrefix)
	}
	if err := r.store.Set(ctx, c.ID, c); err != nil {
		return fmt.Errorf("%w: store campaign %s: %v", models.ErrPersistence, c.ID, err)
	}
	return nil
}

func (r *CampaignRepo) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	var c models.Campaign
	err := r.store.Get(ctx, id, &c)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, fmt.Errorf("%w: campaign %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load campaign %s: %v", models.ErrPersistence, id, err)
	}
	return &c, nil
}

func (r *CampaignRepo) List(ctx context.Context) ([]models.Campaign, error) {
	values, err := r.store.GetByPrefix(ctx, CampaignKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: scan campaigns: %v", models.ErrPersistence, err)
	}

	campaigns := make([]models.Campaign, 0, len(values))
	for _, data := range values {
		var c models.Campaign
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: decode campaign: %v", models.ErrPersistence, err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
