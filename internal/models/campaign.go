package models

import "time"

// Campaign statuses
const (
	CampaignStatusRequested = "requested"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
)

// Valid state transitions: from -> []to. Running an ad creates a campaign
// directly in "active"; the other transitions are reserved for a delivery
// integration that does not exist yet.
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusRequested: {CampaignStatusActive},
	CampaignStatusActive:    {CampaignStatusCompleted},
	CampaignStatusCompleted: {},
}

func IsValidCampaignTransition(from, to string) bool {
	allowed, ok := ValidCampaignTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Campaign is created when a generated ad is run. AdID references the
// ephemeral id of the generated ad and is advisory only; the ad itself is
// never persisted. Reach, Clicks and Engagement are defined here but updated
// by an external telemetry collaborator, never by this service.
type Campaign struct {
	ID         string    `json:"id"`
	AdID       int       `json:"adId"`
	Platforms  []string  `json:"platforms"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"startDate"`
	Reach      int       `json:"reach"`
	Clicks     int       `json:"clicks"`
	Engagement int       `json:"engagement"`
}
