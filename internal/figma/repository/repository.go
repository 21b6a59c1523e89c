package repository

import figmadomain "figmine-backend/internal/figma/domain"

// TokenRepository defines the interface for OAuth token data access
type TokenRepository interface {
	// FindByUserID returns the user's token row, or nil when none exists
	FindByUserID(userID string) (*figmadomain.OAuthToken, error)

	// Upsert writes the user's token row, overwriting any existing one
	Upsert(token *figmadomain.OAuthToken) error
}
