package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines storage operations for projects and their
// tech stack links.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetByTitle(ctx context.Context, title string) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project, skillIDs []string) error
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a repository implementation for projects.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).
		Preload("TechStack.Skill").
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) GetByTitle(ctx context.Context, title string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Preload("TechStack.Skill").
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves the project and replaces its tech stack links with the
// given skill IDs inside a single transaction.
func (r *projectRepository) Update(ctx context.Context, project *models.Project, skillIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("TechStack").Save(project).Error; err != nil {
			return err
		}
		if skillIDs == nil {
			return nil
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.TechStack{}).Error; err != nil {
			return err
		}
		for _, skillID := range skillIDs {
			link := models.TechStack{ProjectID: project.ID, SkillID: skillID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.TechStack{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
