package dto

import "github.com/artisanhub/backend/internal/models"

type CreateProductRequest struct {
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Hashtags    string   `json:"hashtags"`
	Images      []string `json:"images"`
}

// GenerateAdsRequest carries the full product record; the ad engine is a
// pure transform and does not look the product up itself.
type GenerateAdsRequest struct {
	Product       *models.Product `json:"product"`
	Hashtags      string          `json:"hashtags"`
	CustomCaption string          `json:"customCaption,omitempty"`
}

type RunAdRequest struct {
	AdID      int      `json:"adId"`
	Platforms []string `json:"platforms"`
}

type UpdateProfileRequest struct {
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Bio               string         `json:"bio"`
	SocialConnections map[string]any `json:"socialConnections,omitempty"`
}
