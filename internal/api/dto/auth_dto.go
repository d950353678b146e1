package dto

import "time"

// TokenRequest exchanges the shared API key for a viewer token.
type TokenRequest struct {
	Viewer string `json:"viewer"`
	APIKey string `json:"api_key"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
