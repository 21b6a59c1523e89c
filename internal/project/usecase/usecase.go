package usecase

import (
	"context"

	"figmine-backend/internal/project/domain"
	"figmine-backend/internal/project/dto"
	"figmine-backend/pkg/figma"
)

// ProjectUsecase defines the interface for project business logic
type ProjectUsecase interface {
	// SyncProjects returns the user's local projects, extended with rows
	// freshly created from the remote Figma file list when a usable token
	// exists
	SyncProjects(ctx context.Context, userID string) ([]*domain.Project, error)

	// CreateProject creates a project owned by the user
	CreateProject(userID string, req *dto.ProjectRequest) (*domain.Project, error)

	// UpdateProject overwrites name, description and file URL (with
	// ownership check)
	UpdateProject(userID, id string, req *dto.ProjectRequest) (*domain.Project, error)

	// DeleteProject deletes a project (with ownership check)
	DeleteProject(userID, id string) error
}

// TokenResolver yields a usable Figma access token for a user, refreshing if
// needed. An error means the user has no usable token.
type TokenResolver interface {
	AccessTokenForUser(ctx context.Context, userID string) (string, error)
}

// RemoteFileLister is the slice of the Figma client the synchronizer needs
type RemoteFileLister interface {
	GetUserFiles(ctx context.Context, accessToken string) ([]figma.UserFile, error)
}
