package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// SocialMediaRepository defines storage operations for social media links.
type SocialMediaRepository interface {
	Create(ctx context.Context, link *models.SocialMedia) error
	GetByID(ctx context.Context, id string) (*models.SocialMedia, error)
	GetByPlatform(ctx context.Context, platform string) (*models.SocialMedia, error)
	List(ctx context.Context) ([]models.SocialMedia, error)
	Update(ctx context.Context, link *models.SocialMedia) error
	Delete(ctx context.Context, id string) error
}

type socialMediaRepository struct {
	db *gorm.DB
}

// NewSocialMediaRepository returns a repository implementation for social
// media links.
func NewSocialMediaRepository(db *gorm.DB) SocialMediaRepository {
	return &socialMediaRepository{db: db}
}

func (r *socialMediaRepository) Create(ctx context.Context, link *models.SocialMedia) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *socialMediaRepository) GetByID(ctx context.Context, id string) (*models.SocialMedia, error) {
	var link models.SocialMedia
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *socialMediaRepository) GetByPlatform(ctx context.Context, platform string) (*models.SocialMedia, error) {
	var link models.SocialMedia
	if err := r.db.WithContext(ctx).Where("platform = ?", platform).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *socialMediaRepository) List(ctx context.Context) ([]models.SocialMedia, error) {
	var links []models.SocialMedia
	if err := r.db.WithContext(ctx).Order("platform asc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *socialMediaRepository) Update(ctx context.Context, link *models.SocialMedia) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *socialMediaRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SocialMedia{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
