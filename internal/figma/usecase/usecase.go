package usecase

import (
	"context"

	authdomain "figmine-backend/internal/auth/domain"
	figmadomain "figmine-backend/internal/figma/domain"
	figmadto "figmine-backend/internal/figma/dto"
	"figmine-backend/pkg/figma"
)

// FigmaUsecase defines the interface for linking a Figma account and calling
// the Figma API with the linked credential
type FigmaUsecase interface {
	// BeginAuthorization builds the provider authorize URL, carrying the
	// caller's identity token in the state parameter. Side-effect free.
	BeginAuthorization(identityToken string) (*figmadto.ConnectResponse, error)

	// CompleteAuthorization exchanges the callback code for tokens and
	// persists them for the user identified by state
	CompleteAuthorization(ctx context.Context, code, state string) (*figmadto.CallbackResponse, error)

	// ResolveAccessToken returns a usable access token for the given row,
	// refreshing (at most once) when the stored one has expired
	ResolveAccessToken(ctx context.Context, token *figmadomain.OAuthToken) (string, error)

	// AccessTokenForUser loads the user's token row and resolves it
	AccessTokenForUser(ctx context.Context, userID string) (string, error)

	// Authenticated pass-through calls
	GetFile(ctx context.Context, userID, fileKey string) (*figma.FileDetails, error)
	GetTeamProjects(ctx context.Context, userID, teamID string) (*figma.TeamProjects, error)
	GetProjectFiles(ctx context.Context, userID, projectID string) (*figma.ProjectFiles, error)
}

// OAuthProvider is the slice of the Figma client the OAuth flow needs
type OAuthProvider interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) *figma.TokenData
	RefreshAccessToken(ctx context.Context, refreshToken string) (*figma.TokenData, error)
}

// Gateway is the slice of the Figma client the browse endpoints need
type Gateway interface {
	GetFile(ctx context.Context, fileKey, accessToken string) (*figma.FileDetails, error)
	GetTeamProjects(ctx context.Context, teamID, accessToken string) (*figma.TeamProjects, error)
	GetProjectFiles(ctx context.Context, projectID, accessToken string) (*figma.ProjectFiles, error)
}

// IdentityVerifier resolves the identity token round-tripped through the
// OAuth state parameter
type IdentityVerifier interface {
	ExtractEmail(tokenString string) (string, error)
}

// UserFinder resolves users by the email extracted from state
type UserFinder interface {
	FindByEmail(email string) (*authdomain.User, error)
}
