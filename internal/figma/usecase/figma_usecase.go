package usecase

import (
	"context"
	"log"
	"time"

	figmadomain "figmine-backend/internal/figma/domain"
	figmadto "figmine-backend/internal/figma/dto"
	"figmine-backend/internal/figma/repository"
	"figmine-backend/pkg/apperr"
	"figmine-backend/pkg/figma"
)

// figmaUsecase implements FigmaUsecase interface
type figmaUsecase struct {
	tokenRepo repository.TokenRepository
	provider  OAuthProvider
	gateway   Gateway
	identity  IdentityVerifier
	users     UserFinder
}

// NewFigmaUsecase creates a new instance of figmaUsecase
func NewFigmaUsecase(tokenRepo repository.TokenRepository, provider OAuthProvider, gateway Gateway, identity IdentityVerifier, users UserFinder) FigmaUsecase {
	return &figmaUsecase{
		tokenRepo: tokenRepo,
		provider:  provider,
		gateway:   gateway,
		identity:  identity,
		users:     users,
	}
}

func (u *figmaUsecase) BeginAuthorization(identityToken string) (*figmadto.ConnectResponse, error) {
	if identityToken == "" {
		return nil, apperr.Unauthorized("Missing Authorization header")
	}

	// Reject malformed identity tokens up front so the provider never sees
	// a state value the callback would refuse.
	if _, err := u.identity.ExtractEmail(identityToken); err != nil {
		return nil, apperr.Ensure(err, "Error validating identity token")
	}

	return &figmadto.ConnectResponse{URL: u.provider.AuthCodeURL(identityToken)}, nil
}

func (u *figmaUsecase) CompleteAuthorization(ctx context.Context, code, state string) (*figmadto.CallbackResponse, error) {
	if state == "" {
		return nil, apperr.Unauthorized("Missing state")
	}

	email, err := u.identity.ExtractEmail(state)
	if err != nil {
		return nil, apperr.Ensure(err, "Error decoding state")
	}

	user, err := u.users.FindByEmail(email)
	if err != nil {
		return nil, apperr.Internal("Error looking up user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	data := u.provider.ExchangeCode(ctx, code)
	if data == nil {
		return nil, apperr.Validation("Failed to exchange code")
	}

	expiresAt := time.Now().Add(time.Duration(data.ExpiresIn) * time.Second)
	token := &figmadomain.OAuthToken{
		UserID:       user.ID,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	if err := u.tokenRepo.Upsert(token); err != nil {
		return nil, apperr.Internal("Error storing Figma token", err)
	}

	log.Printf("[DEBUG] figma account linked for user %s, token expires in %ds", user.ID, data.ExpiresIn)

	return &figmadto.CallbackResponse{
		Status:    "success",
		Message:   "Figma account linked",
		ExpiresIn: data.ExpiresIn,
	}, nil
}

// ResolveAccessToken applies the refresh policy: a token whose expiry has not
// passed is used as-is; otherwise a single refresh grant is attempted and the
// row is overwritten. Concurrent refreshes for the same user are not
// serialized; the last write wins.
func (u *figmaUsecase) ResolveAccessToken(ctx context.Context, token *figmadomain.OAuthToken) (string, error) {
	if !token.Expired() {
		return token.AccessToken, nil
	}

	data, err := u.provider.RefreshAccessToken(ctx, token.RefreshToken)
	if err != nil {
		return "", &apperr.Error{
			Code:    apperr.CodeUnauthorized,
			Message: "Figma token expired and refresh failed",
			Detail:  err.Error(),
		}
	}

	token.AccessToken = data.AccessToken
	token.RefreshToken = data.RefreshToken
	token.ExpiresAt = time.Now().Add(time.Duration(data.ExpiresIn) * time.Second)
	if err := u.tokenRepo.Upsert(token); err != nil {
		return "", apperr.Internal("Error storing refreshed Figma token", err)
	}

	return token.AccessToken, nil
}

func (u *figmaUsecase) AccessTokenForUser(ctx context.Context, userID string) (string, error) {
	token, err := u.tokenRepo.FindByUserID(userID)
	if err != nil {
		return "", apperr.Internal("Error looking up Figma token", err)
	}
	if token == nil {
		return "", apperr.Unauthorized("Figma account not linked")
	}
	return u.ResolveAccessToken(ctx, token)
}

func (u *figmaUsecase) GetFile(ctx context.Context, userID, fileKey string) (*figma.FileDetails, error) {
	accessToken, err := u.AccessTokenForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.gateway.GetFile(ctx, fileKey, accessToken)
}

func (u *figmaUsecase) GetTeamProjects(ctx context.Context, userID, teamID string) (*figma.TeamProjects, error) {
	accessToken, err := u.AccessTokenForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.gateway.GetTeamProjects(ctx, teamID, accessToken)
}

func (u *figmaUsecase) GetProjectFiles(ctx context.Context, userID, projectID string) (*figma.ProjectFiles, error) {
	accessToken, err := u.AccessTokenForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.gateway.GetProjectFiles(ctx, projectID, accessToken)
}
