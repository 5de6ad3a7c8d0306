package services

import (
	"context"
	"time"

	"github.com/artisanhub/backend/internal/events"
	"github.com/artisanhub/backend/internal/models"
	"github.com/artisanhub/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunConfirmation is returned alongside the campaign id. No ad platform is
// actually contacted; running a campaign is a fire-and-forget simulation
// until social accounts are connected.
const RunConfirmation = "Ad campaign started successfully! Connect your social media accounts in settings to run live campaigns."

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	publisher    events.Publisher
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		publisher:    publisher,
		log:          log,
	}
}

// Run promotes a generated ad into a tracked campaign. adID references the
// ad's ephemeral id and is advisory only; no check that the ad still exists.
func (s *CampaignService) Run(ctx context.Context, adID int, platforms []string) (*models.Campaign, string, error) {
	if platforms == nil {
		platforms = []string{}
	}

	c := &models.Campaign{
		ID:        repositories.CampaignKeyPrefix + uuid.NewString(),
		AdID:      adID,
		Platforms: platforms,
		Status:    models.CampaignStatusActive,
		StartDate: time.Now().UTC(),
	}

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return nil, "", err
	}

	_ = s.publisher.Publish(ctx, events.StreamActivity, events.Event{
		Type: events.EventCampaignStarted,
		Payload: map[string]any{
			"campaignId": c.ID,
			"adId":       adID,
			"platforms":  platforms,
		},
	})

	s.log.Info("campaign started", zap.String("campaign_id", c.ID), zap.Int("ad_id", adID))
	return c, RunConfirmation, nil
}

func (s *CampaignService) List(ctx context.Context) ([]models.Campaign, error) {
	return s.campaignRepo.List(ctx)
}
