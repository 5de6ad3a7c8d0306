package services

import (
	"context"
	"strings"
	"testing"

	"github.com/artisanhub/backend/internal/events"
	"github.com/artisanhub/backend/internal/kv"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/productstore"
	"github.com/artisanhub/backend/internal/repositories"
	"go.uber.org/zap"
)

func TestRunCreatesActiveCampaign(t *testing.T) {
	repo := repositories.NewCampaignRepo(kv.NewMemoryStore())
	svc := NewCampaignService(repo, nopPublisher{}, zap.NewNop())

	c, message, err := svc.Run(context.Background(), 1, []string{"instagram"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.HasPrefix(c.ID, repositories.CampaignKeyPrefix) {
		t.Errorf("campaign id %q not prefixed with %q", c.ID, repositories.CampaignKeyPrefix)
	}
	if c.Status != models.CampaignStatusActive {
		t.Errorf("status = %q, want active", c.Status)
	}
	if c.Reach != 0 || c.Clicks != 0 || c.Engagement != 0 {
		t.Errorf("counters = %d/%d/%d, want all zero", c.Reach, c.Clicks, c.Engagement)
	}
	if c.StartDate.IsZero() {
		t.Error("startDate not stamped")
	}
	if message != RunConfirmation {
		t.Errorf("message = %q, want the fixed confirmation", message)
	}
}

func TestRunCampaignIDsDistinctFromProductIDs(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	campaignSvc := NewCampaignService(repositories.NewCampaignRepo(store), nopPublisher{}, zap.NewNop())
	catalogSvc := NewCatalogService(repositories.NewProductRepo(store), productstore.New(), nopPublisher{}, zap.NewNop())

	p, err := catalogSvc.Create(ctx, models.ProductInput{Title: "t", Price: "1", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	c, _, err := svcRun(ctx, campaignSvc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if c.ID == p.ID {
		t.Errorf("campaign id collides with product id %q", c.ID)
	}

	seen := map[string]bool{p.ID: true, c.ID: true}
	for i := 0; i < 5; i++ {
		next, _, err := svcRun(ctx, campaignSvc)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if seen[next.ID] {
			t.Fatalf("duplicate campaign id %q", next.ID)
		}
		seen[next.ID] = true
	}
}

func svcRun(ctx context.Context, svc *CampaignService) (*models.Campaign, string, error) {
	return svc.Run(ctx, 2, []string{"facebook", "instagram"})
}

func TestRunPublishesCampaignStarted(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewCampaignService(repositories.NewCampaignRepo(kv.NewMemoryStore()), pub, zap.NewNop())

	c, _, err := svc.Run(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(pub.published) != 1 || pub.published[0].Type != events.EventCampaignStarted {
		t.Fatalf("published = %+v, want one campaign_started event", pub.published)
	}
	if pub.published[0].Payload["campaignId"] != c.ID {
		t.Errorf("event payload campaignId = %v, want %s", pub.published[0].Payload["campaignId"], c.ID)
	}
	if c.Platforms == nil || len(c.Platforms) != 0 {
		t.Errorf("nil platforms should normalize to empty set, got %v", c.Platforms)
	}
}

func TestRunThenList(t *testing.T) {
	ctx := context.Background()
	svc := NewCampaignService(repositories.NewCampaignRepo(kv.NewMemoryStore()), nopPublisher{}, zap.NewNop())

	_, _, _ = svc.Run(ctx, 1, []string{"instagram"})
	_, _, _ = svc.Run(ctx, 2, []string{"facebook"})

	campaigns, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(campaigns) != 2 {
		t.Errorf("List returned %d campaigns, want 2", len(campaigns))
	}
}
