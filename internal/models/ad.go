package models

// Creative archetypes
const (
	AdTypePoster = "poster"
	AdTypeStory  = "story"
)

// GeneratedAd is ephemeral: it exists only in the response of a generation
// call and is never persisted unless promoted into a Campaign. ID is unique
// only within one generation call.
type GeneratedAd struct {
	ID        int      `json:"id"`
	Type      string   `json:"type"`
	Image     string   `json:"image"`
	Caption   string   `json:"caption"`
	Hashtags  []string `json:"hashtags"`
	Price     string   `json:"price"`
	ProductID string   `json:"productId"`
}
