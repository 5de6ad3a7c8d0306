// Package adgen turns one product record into platform-ready creative
// variants. Generation is a pure transform: no persistence, no network, and
// deterministic output for identical inputs.
package adgen

import (
	"fmt"
	"strings"

	"github.com/artisanhub/backend/internal/models"
)

const (
	posterDescriptionLimit = 100
	storyDescriptionLimit  = 80
)

// Per-archetype fallback images, used when the product carries no image.
const (
	posterFallbackImage = "https://images.unsplash.com/photo-1567366865504-ffd4cc9ce7bc?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxjb2xvcmZ1bCUyMHBhaW50JTIwYnJ1c2hlcyUyMGFydHxlbnwxfHx8fDE3NTc4MzExMzN8MA&ixlib=rb-4.1.0&q=80&w=1080"
	storyFallbackImage  = "https://images.unsplash.com/photo-1646846565807-61fd42034c3b?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxhcnQlMjBnYWxsZXJ5JTIwYXJ0d29yayUyMGRpc3BsYXl8ZW58MXx8fHwxNzU3ODMxMTM1fDA&ixlib=rb-4.1.0&q=80&w=1080"
)

// Generate builds the two fixed archetypes (poster, story) for a product.
// hashtagText is whitespace-tokenized and only #-prefixed tokens survive;
// captionOverride, when non-empty, replaces both synthesized captions
// verbatim.
func Generate(product *models.Product, hashtagText, captionOverride string) ([]models.GeneratedAd, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: product is required for ad generation", models.ErrInvalidInput)
	}

	tags := FilterHashtags(hashtagText)
	tagText := strings.Join(tags, " ")

	posterCaption := captionOverride
	storyCaption := captionOverride
	if captionOverride == "" {
		posterCaption = fmt.Sprintf(`🎨 "%s" - %s... ✨ Perfect for art lovers! Available for %s %s`,
			product.Title, truncate(product.Description, posterDescriptionLimit), product.Price, tagText)
		storyCaption = fmt.Sprintf(`Behind every masterpiece is a story 📖 "%s" captures %s... Available now for %s %s`,
			product.Title, truncate(product.Description, storyDescriptionLimit), product.Price, tagText)
	}

	return []models.GeneratedAd{
		{
			ID:        1,
			Type:      models.AdTypePoster,
			Image:     imageOrFallback(product, posterFallbackImage),
			Caption:   posterCaption,
			Hashtags:  tags,
			Price:     product.Price,
			ProductID: product.ID,
		},
		{
			ID:        2,
			Type:      models.AdTypeStory,
			Image:     imageOrFallback(product, storyFallbackImage),
			Caption:   storyCaption,
			Hashtags:  tags,
			Price:     product.Price,
			ProductID: product.ID,
		},
	}, nil
}

// FilterHashtags keeps only #-prefixed tokens, order preserved. Tokens
// without the # are silently dropped.
func FilterHashtags(hashtagText string) []string {
	tags := []string{}
	for _, tok := range strings.Fields(hashtagText) {
		if strings.HasPrefix(tok, "#") {
			tags = append(tags, tok)
		}
	}
	return tags
}

// truncate cuts after exactly limit characters. The cut is not word-boundary
// aware; downstream consumers depend on the exact character count.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func imageOrFallback(product *models.Product, fallback string) string {
	if len(product.Images) > 0 && product.Images[0] != "" {
		return product.Images[0]
	}
	return fallback
}
