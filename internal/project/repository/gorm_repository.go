package repository

import (
	"errors"
	"time"

	"figmine-backend/internal/project/domain"

	"gorm.io/gorm"
)

// projectRepository implements ProjectRepository interface
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of projectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

func (r *projectRepository) Create(project *domain.Project) error {
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()
	return r.db.Create(project).Error
}

func (r *projectRepository) CreateBatch(projects []*domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	now := time.Now()
	for _, p := range projects {
		p.CreatedAt = now
		p.UpdatedAt = now
	}
	return r.db.Create(projects).Error
}

func (r *projectRepository) FindByID(id string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindByOwner(ownerID string) ([]*domain.Project, error) {
	var projects []*domain.Project
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Update(project *domain.Project) error {
	project.UpdatedAt = time.Now()
	return r.db.Save(project).Error
}

func (r *projectRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Project{}).Error
}
