package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

// AboutService manages the single about section.
type AboutService struct {
	aboutRepo repository.AboutRepository
}

type CreateAboutInput struct {
	Description string
}

type UpdateAboutInput struct {
	Description string
}

func NewAboutService(aboutRepo repository.AboutRepository) *AboutService {
	return &AboutService{aboutRepo: aboutRepo}
}

func (s *AboutService) Get(ctx context.Context) (*models.About, error) {
	about, err := s.aboutRepo.First(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, models.NewNotFoundError("About section", "any")
		}
		return nil, models.NewPersistenceError(err)
	}
	return about, nil
}

func (s *AboutService) Create(ctx context.Context, in CreateAboutInput) (*models.About, error) {
	v := validation.New()
	description := v.Required("description", in.Description)
	v.MinLen("description", description, 3)
	v.MaxLen("description", description, 1000)
	if err := v.Err(); err != nil {
		return nil, err
	}

	// At most one about row may exist.
	if _, err := s.aboutRepo.First(ctx); err == nil {
		return nil, models.NewValidationError("About section already exists")
	} else if !isNotFound(err) {
		return nil, models.NewPersistenceError(err)
	}

	about := &models.About{Description: description}
	if err := s.aboutRepo.Create(ctx, about); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return about, nil
}

func (s *AboutService) Update(ctx context.Context, id string, in UpdateAboutInput) (*models.About, error) {
	v := validation.New()
	description := v.Required("description", in.Description)
	v.MinLen("description", description, 3)
	v.MaxLen("description", description, 1000)
	if err := v.Err(); err != nil {
		return nil, err
	}

	about, err := s.aboutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "About section", id)
	}

	if about.Description == description {
		return about, nil
	}

	about.Description = description
	if err := s.aboutRepo.Update(ctx, about); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return about, nil
}

func (s *AboutService) Delete(ctx context.Context, id string) error {
	if _, err := s.aboutRepo.GetByID(ctx, id); err != nil {
		return lookupErr(err, "About section", id)
	}
	if err := s.aboutRepo.Delete(ctx, id); err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}
