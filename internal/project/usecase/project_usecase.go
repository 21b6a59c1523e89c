package usecase

import (
	"context"
	"log"

	"figmine-backend/internal/project/domain"
	"figmine-backend/internal/project/dto"
	"figmine-backend/internal/project/repository"
	"figmine-backend/pkg/apperr"

	"github.com/google/uuid"
)

// projectUsecase implements ProjectUsecase interface
type projectUsecase struct {
	projectRepo repository.ProjectRepository
	tokens      TokenResolver
	remote      RemoteFileLister
}

// NewProjectUsecase creates a new instance of projectUsecase
func NewProjectUsecase(projectRepo repository.ProjectRepository, tokens TokenResolver, remote RemoteFileLister) ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		tokens:      tokens,
		remote:      remote,
	}
}

func (u *projectUsecase) SyncProjects(ctx context.Context, userID string) ([]*domain.Project, error) {
	locals, err := u.projectRepo.FindByOwner(userID)
	if err != nil {
		return nil, apperr.Internal("Error fetching projects", err)
	}

	accessToken, err := u.tokens.AccessTokenForUser(ctx, userID)
	if err != nil {
		// No linked account, or a token past expiry that could not be
		// refreshed: serve local projects only.
		log.Printf("[DEBUG] sync for user %s without usable figma token: %v", userID, err)
		return locals, nil
	}

	created, err := u.fetchRemoteProjects(ctx, userID, accessToken)
	if err != nil {
		return nil, err
	}

	return append(locals, created...), nil
}

// fetchRemoteProjects pulls the user's remote file list and persists every
// entry as a fresh Project row. There is deliberately no dedup against
// existing rows by file key; each sync that reaches this point inserts the
// full remote set again.
func (u *projectUsecase) fetchRemoteProjects(ctx context.Context, userID, accessToken string) ([]*domain.Project, error) {
	files, err := u.remote.GetUserFiles(ctx, accessToken)
	if err != nil {
		if e := apperr.From(err); e != nil {
			return nil, e
		}
		return nil, apperr.API("Failed to fetch projects from Figma", err.Error(), 0)
	}

	created := make([]*domain.Project, 0, len(files))
	for _, f := range files {
		if f.Name == "" || f.Key == "" {
			return nil, apperr.API("Invalid project data from Figma", "", 0)
		}
		created = append(created, &domain.Project{
			ID:          uuid.New().String(),
			Name:        f.Name,
			Description: f.Description,
			FileURL:     f.Key,
			OwnerID:     userID,
		})
	}

	if err := u.projectRepo.CreateBatch(created); err != nil {
		return nil, apperr.API("Failed to store projects from Figma", err.Error(), 0)
	}

	return created, nil
}

func (u *projectUsecase) CreateProject(userID string, req *dto.ProjectRequest) (*domain.Project, error) {
	if req == nil || req.Name == "" || req.FileURL == "" {
		return nil, apperr.Validation("Project name and file URL are required")
	}

	project := &domain.Project{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		FileURL:     req.FileURL,
		OwnerID:     userID,
	}

	if err := u.projectRepo.Create(project); err != nil {
		return nil, apperr.Internal("Error creating project", err)
	}

	return project, nil
}

func (u *projectUsecase) UpdateProject(userID, id string, req *dto.ProjectRequest) (*domain.Project, error) {
	if req == nil || req.Name == "" || req.FileURL == "" {
		return nil, apperr.Validation("Project name and file URL are required")
	}

	project, err := u.projectRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("Error looking up project", err)
	}
	if project == nil {
		return nil, apperr.NotFound("Project not found")
	}
	if project.OwnerID != userID {
		return nil, apperr.Auth("Unauthorized to update this project")
	}

	project.Name = req.Name
	project.Description = req.Description
	project.FileURL = req.FileURL

	if err := u.projectRepo.Update(project); err != nil {
		return nil, apperr.Internal("Error updating project", err)
	}

	return project, nil
}

func (u *projectUsecase) DeleteProject(userID, id string) error {
	project, err := u.projectRepo.FindByID(id)
	if err != nil {
		return apperr.Internal("Error looking up project", err)
	}
	if project == nil {
		return apperr.NotFound("Project not found")
	}
	if project.OwnerID != userID {
		return apperr.Auth("Unauthorized to delete this project")
	}

	if err := u.projectRepo.Delete(id); err != nil {
		return apperr.Internal("Error deleting project", err)
	}

	return nil
}
