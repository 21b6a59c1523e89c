package usecase

import (
	authdomain "figmine-backend/internal/auth/domain"
	authdto "figmine-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for account and identity-token logic
type AuthUsecase interface {
	// Register creates an account and returns a fresh token pair
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login verifies credentials and returns a fresh token pair
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// RefreshToken rotates a persisted refresh token into a new token pair
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)

	// Logout invalidates a refresh token
	Logout(refreshToken string) error

	// ValidateToken checks an access token and resolves its user
	ValidateToken(tokenString string) (*authdomain.User, error)

	// ExtractEmail verifies an access token's signature and expiry and
	// returns the email claim without touching the database. Used to
	// resolve the identity carried in the OAuth state parameter.
	ExtractEmail(tokenString string) (string, error)
}
