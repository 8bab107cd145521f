package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// AboutRepository defines storage operations for the about section.
type AboutRepository interface {
	Create(ctx context.Context, about *models.About) error
	First(ctx context.Context) (*models.About, error)
	GetByID(ctx context.Context, id string) (*models.About, error)
	Update(ctx context.Context, about *models.About) error
	Delete(ctx context.Context, id string) error
}

type aboutRepository struct {
	db *gorm.DB
}

// NewAboutRepository returns a repository implementation for the about section.
func NewAboutRepository(db *gorm.DB) AboutRepository {
	return &aboutRepository{db: db}
}

func (r *aboutRepository) Create(ctx context.Context, about *models.About) error {
	return r.db.WithContext(ctx).Create(about).Error
}

func (r *aboutRepository) First(ctx context.Context) (*models.About, error) {
	var about models.About
	if err := r.db.WithContext(ctx).First(&about).Error; err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *aboutRepository) GetByID(ctx context.Context, id string) (*models.About, error) {
	var about models.About
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&about).Error; err != nil {
		return nil, err
	}
	return &about, nil
}

func (r *aboutRepository) Update(ctx context.Context, about *models.About) error {
	return r.db.WithContext(ctx).Save(about).Error
}

func (r *aboutRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.About{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
