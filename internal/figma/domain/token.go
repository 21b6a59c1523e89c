package domain

import "time"

// OAuthToken is the persisted Figma credential of one user. At most one row
// exists per user; a refresh overwrites the row in place.
type OAuthToken struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Expired reports whether the access token's lifetime has passed.
func (t *OAuthToken) Expired() bool {
	return time.Now().After(t.ExpiresAt)
}
