package services

import (
	"context"
	"strings"
	"testing"

	"github.com/artisanhub/backend/internal/adgen"
	"github.com/artisanhub/backend/internal/events"
	"github.com/artisanhub/backend/internal/kv"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/productstore"
	"github.com/artisanhub/backend/internal/repositories"
	"go.uber.org/zap"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, events.Event) error { return nil }

type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, e events.Event) error {
	p.published = append(p.published, e)
	return nil
}

func newCatalogService(pub events.Publisher) (*CatalogService, *productstore.Store) {
	store := productstore.New()
	repo := repositories.NewProductRepo(kv.NewMemoryStore())
	return NewCatalogService(repo, store, pub, zap.NewNop()), store
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	svc, _ := newCatalogService(nopPublisher{})

	p, err := svc.Create(context.Background(), models.ProductInput{
		Title:       "Sunset",
		Price:       "150",
		Description: "A warm abstract sunset over hills",
		Images:      []string{"img1"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !strings.HasPrefix(p.ID, repositories.ProductKeyPrefix) {
		t.Errorf("id %q not prefixed with %q", p.ID, repositories.ProductKeyPrefix)
	}
	if p.ID == repositories.ProductKeyPrefix {
		t.Error("id has no unique suffix")
	}
	if p.Status != models.ProductStatusActive {
		t.Errorf("status = %q, want active", p.Status)
	}
	if p.Views != 0 {
		t.Errorf("views = %d, want 0", p.Views)
	}
	if p.CreatedAt.IsZero() {
		t.Error("createdAt not stamped")
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalogService(nopPublisher{})

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		p, err := svc.Create(ctx, models.ProductInput{Title: "t", Price: "1", Description: "d"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}

	products, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("List returned %d products, want 5", len(products))
	}
	for _, p := range products {
		if !seen[p.ID] {
			t.Errorf("listed unknown product %q", p.ID)
		}
	}
}

func TestCreateSyncsClientStoreAndPublishes(t *testing.T) {
	pub := &recordingPublisher{}
	svc, clientStore := newCatalogService(pub)

	p, err := svc.Create(context.Background(), models.ProductInput{Title: "Sunset", Price: "150", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if clientStore.Len() != 1 {
		t.Fatalf("client store has %d products, want 1", clientStore.Len())
	}
	if clientStore.Products()[0].ID != p.ID {
		t.Error("client store holds a different product than the one created")
	}

	if len(pub.published) != 1 || pub.published[0].Type != events.EventProductCreated {
		t.Errorf("published = %+v, want one product_created event", pub.published)
	}
	if pub.published[0].Payload["productId"] != p.ID {
		t.Errorf("event payload productId = %v, want %s", pub.published[0].Payload["productId"], p.ID)
	}
}

// End-to-end: create the Sunset product, then generate ads for it.
func TestSunsetScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCatalogService(nopPublisher{})

	p, err := svc.Create(ctx, models.ProductInput{
		Title:       "Sunset",
		Price:       "150",
		Description: "A warm abstract sunset over hills",
		Hashtags:    "",
		Images:      []string{"img1"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(p.ID, "product_") || p.Status != "active" || p.Views != 0 {
		t.Fatalf("created product %+v does not match expectations", p)
	}

	ads, err := adgen.Generate(p, "#art #sunset", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(ads) != 2 {
		t.Fatalf("got %d ads, want 2", len(ads))
	}
	for _, ad := range ads {
		if len(ad.Hashtags) != 2 || ad.Hashtags[0] != "#art" || ad.Hashtags[1] != "#sunset" {
			t.Errorf("%s hashtags = %v, want [#art #sunset]", ad.Type, ad.Hashtags)
		}
		if !strings.Contains(ad.Caption, "Sunset") || !strings.Contains(ad.Caption, "A warm abstract sunset over hills") {
			t.Errorf("%s caption %q missing title or description", ad.Type, ad.Caption)
		}
		if ad.Price != "150" {
			t.Errorf("%s price = %q, want 150", ad.Type, ad.Price)
		}
	}
}
