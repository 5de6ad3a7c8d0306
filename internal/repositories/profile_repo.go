package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/artisanhub/backend/internal/kv"
	"github.com/artisanhub/backend/internal/models"
)

// Single-tenant: exactly one profile under a fixed key.
const profileKey = "user_profile"

type ProfileRepo struct {
	store kv.Store
}

func NewProfileRepo(store kv.Store) *ProfileRepo {
	return &ProfileRepo{store: store}
}

// Get returns the stored profile, or the default profile if none was ever
// saved. Only a real store failure is an error.
func (r *ProfileRepo) Get(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := r.store.Get(ctx, profileKey, &p)
	if errors.Is(err, kv.ErrNotFound) {
		return models.DefaultProfile(), nil
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: load profile: %v", models.ErrPersistence, err)
	}
	return p, nil
}

func (r *ProfileRepo) Set(ctx context.Context, p models.Profile) error {
	if err := r.store.Set(ctx, profileKey, p); err != nil {
		return fmt.Errorf("%w: store profile: %v", models.ErrPersistence, err)
	}
	return nil
}
