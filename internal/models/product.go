package models

import "time"

const ProductStatusActive = "active"

// Product is immutable after creation from this service's point of view.
// Views is owned by an external telemetry path and never mutated here.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"` // decimal as string, display-only
	Description string    `json:"description"`
	Hashtags    string    `json:"hashtags"` // free text, space-separated tokens
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status"`
	Views       int       `json:"views"`
}

type ProductInput struct {
	Title       string
	Price       string
	Description string
	Hashtags    string
	Images      []string
}
