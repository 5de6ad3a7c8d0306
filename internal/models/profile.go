package models

import "time"

type Profile struct {
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Bio               string         `json:"bio"`
	SocialConnections map[string]any `json:"socialConnections"`
	UpdatedAt         *time.Time     `json:"updatedAt,omitempty"`
}

// DefaultProfile is served when no profile was ever stored.
func DefaultProfile() Profile {
	return Profile{
		Name:              "Artist Name",
		Email:             "artist@example.com",
		Bio:               "Passionate artist creating beautiful works.",
		SocialConnections: map[string]any{},
	}
}
