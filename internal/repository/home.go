package repository

import (
	"context"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// HomeRepository defines storage operations for the home section.
type HomeRepository interface {
	Create(ctx context.Context, home *models.Home) error
	First(ctx context.Context) (*models.Home, error)
	GetByID(ctx context.Context, id string) (*models.Home, error)
	Update(ctx context.Context, home *models.Home) error
	Delete(ctx context.Context, id string) error
}

type homeRepository struct {
	db *gorm.DB
}

// NewHomeRepository returns a repository implementation for the home section.
func NewHomeRepository(db *gorm.DB) HomeRepository {
	return &homeRepository{db: db}
}

func (r *homeRepository) Create(ctx context.Context, home *models.Home) error {
	return r.db.WithContext(ctx).Create(home).Error
}

func (r *homeRepository) First(ctx context.Context) (*models.Home, error) {
	var home models.Home
	if err := r.db.WithContext(ctx).First(&home).Error; err != nil {
		return nil, err
	}
	return &home, nil
}

func (r *homeRepository) GetByID(ctx context.Context, id string) (*models.Home, error) {
	var home models.Home
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&home).Error; err != nil {
		return nil, err
	}
	return &home, nil
}

func (r *homeRepository) Update(ctx context.Context, home *models.Home) error {
	return r.db.WithContext(ctx).Save(home).Error
}

func (r *homeRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Home{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
