package repository

import "figmine-backend/internal/project/domain"

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *domain.Project) error

	// CreateBatch creates a batch of projects in one transaction
	CreateBatch(projects []*domain.Project) error

	// FindByID finds a project by its ID
	FindByID(id string) (*domain.Project, error)

	// FindByOwner finds all projects owned by a user
	FindByOwner(ownerID string) ([]*domain.Project, error)

	// Update updates an existing project
	Update(project *domain.Project) error

	// Delete deletes a project by ID
	Delete(id string) error
}
