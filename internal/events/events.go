package events

import "context"

// Event types
const (
	EventProductCreated  = "product_created"
	EventCampaignStarted = "campaign_started"
)

// StreamActivity carries everything the dashboard's live feed shows.
const StreamActivity = "events:activity"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
