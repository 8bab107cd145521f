package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// WorkExperienceRepository defines storage operations for work history.
type WorkExperienceRepository interface {
	Create(ctx context.Context, entry *models.WorkExperience) error
	GetByID(ctx context.Context, id string) (*models.WorkExperience, error)
	List(ctx context.Context) ([]models.WorkExperience, error)
	Update(ctx context.Context, entry *models.WorkExperience) error
	Delete(ctx context.Context, id string) error
}

type workExperienceRepository struct {
	db *gorm.DB
}

// NewWorkExperienceRepository returns a repository implementation for work
// history entries.
func NewWorkExperienceRepository(db *gorm.DB) WorkExperienceRepository {
	return &workExperienceRepository{db: db}
}

func (r *workExperienceRepository) Create(ctx context.Context, entry *models.WorkExperience) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *workExperienceRepository) GetByID(ctx context.Context, id string) (*models.WorkExperience, error) {
	var entry models.WorkExperience
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns entries newest first, with ongoing positions ahead of
// finished ones.
func (r *workExperienceRepository) List(ctx context.Context) ([]models.WorkExperience, error) {
	var entries []models.WorkExperience
	if err := r.db.WithContext(ctx).
		Order("is_present desc").
		Order("start_date desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *workExperienceRepository) Update(ctx context.Context, entry *models.WorkExperience) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *workExperienceRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WorkExperience{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
