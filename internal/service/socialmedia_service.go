package service

import (
	"context"
	"strings"

	"portfolio/internal/assetstore"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

const maxSocialPhotoBytes = 2 * 1024 * 1024

// SocialMediaService manages social media links and their photos.
type SocialMediaService struct {
	socialRepo repository.SocialMediaRepository
	assets     assetstore.Store
}

type CreateSocialMediaInput struct {
	Platform string
	URL      string
	Photo    *models.FileUpload
}

// PatchSocialMediaInput carries partial updates: nil pointers leave the stored
// value untouched.
type PatchSocialMediaInput struct {
	Platform *string
	URL      *string
	Photo    *models.FileUpload
}

// SocialMediaResult pairs the persisted row with the outcome of any asset
// cleanup the operation attempted.
type SocialMediaResult struct {
	Link     *models.SocialMedia
	Cleanup  assetstore.CleanupOutcome
	NoChange bool
}

func NewSocialMediaService(socialRepo repository.SocialMediaRepository, assets assetstore.Store) *SocialMediaService {
	return &SocialMediaService{socialRepo: socialRepo, assets: assets}
}

func socialPhotoRules(required bool) validation.FileRules {
	return validation.FileRules{
		Required:    required,
		MaxBytes:    maxSocialPhotoBytes,
		TypePrefix:  "image/",
		TypeMessage: "photo must be an image",
	}
}

func (s *SocialMediaService) List(ctx context.Context) ([]models.SocialMedia, error) {
	links, err := s.socialRepo.List(ctx)
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return links, nil
}

func (s *SocialMediaService) Get(ctx context.Context, id string) (*models.SocialMedia, error) {
	link, err := s.socialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Social media link", id)
	}
	return link, nil
}

func (s *SocialMediaService) Create(ctx context.Context, in CreateSocialMediaInput) (*models.SocialMedia, error) {
	v := validation.New()
	platform := v.Required("platform", in.Platform)
	v.MinLen("platform", platform, 3)
	link := v.Required("url", in.URL)
	if link != "" {
		v.URL("url", link)
	}
	v.File("photo", in.Photo, socialPhotoRules(true))
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.socialRepo.GetByPlatform(ctx, platform); err == nil {
		return nil, models.NewConflictError("Social media link for this platform already exists")
	} else if !isNotFound(err) {
		return nil, models.NewPersistenceError(err)
	}

	photo, err := s.assets.Store(ctx, in.Photo, assetstore.FolderSocialMedia)
	if err != nil {
		return nil, models.NewUploadError(err)
	}

	row := &models.SocialMedia{Platform: platform, URL: link, Photo: photo}
	if err := s.socialRepo.Create(ctx, row); err != nil {
		if outcome := assetstore.BestEffortRemove(ctx, s.assets, photo); outcome.Failed() {
			middleware.Logger.WarnContext(ctx, "orphaned social photo after failed create", "reference", photo, "error", outcome.Err)
		}
		return nil, models.NewPersistenceError(err)
	}
	return row, nil
}

func (s *SocialMediaService) Patch(ctx context.Context, id string, in PatchSocialMediaInput) (*SocialMediaResult, error) {
	v := validation.New()
	var platform, link string
	if in.Platform != nil {
		platform = strings.TrimSpace(*in.Platform)
		if platform == "" {
			v.Add("platform", "platform is required")
		}
		v.MinLen("platform", platform, 3)
	}
	if in.URL != nil {
		link = strings.TrimSpace(*in.URL)
		v.URL("url", link)
	}
	v.File("photo", in.Photo, socialPhotoRules(false))
	if err := v.Err(); err != nil {
		return nil, err
	}

	row, err := s.socialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Social media link", id)
	}

	platformChanged := in.Platform != nil && row.Platform != platform
	urlChanged := in.URL != nil && row.URL != link
	if !platformChanged && !urlChanged && in.Photo == nil {
		return &SocialMediaResult{Link: row, NoChange: true}, nil
	}

	if platformChanged {
		if other, err := s.socialRepo.GetByPlatform(ctx, platform); err == nil && other.ID != row.ID {
			return nil, models.NewConflictError("Social media link for this platform already exists")
		} else if err != nil && !isNotFound(err) {
			return nil, models.NewPersistenceError(err)
		}
		row.Platform = platform
	}
	if urlChanged {
		row.URL = link
	}

	var outcome assetstore.CleanupOutcome
	if in.Photo != nil {
		newRef, cleanup, err := assetstore.Replace(ctx, s.assets, row.Photo, in.Photo, assetstore.FolderSocialMedia)
		if err != nil {
			return nil, models.NewUploadError(err)
		}
		outcome = cleanup
		if outcome.Failed() {
			middleware.Logger.WarnContext(ctx, "failed to remove superseded social photo", "reference", row.Photo, "error", outcome.Err)
		}
		row.Photo = newRef
	}

	if err := s.socialRepo.Update(ctx, row); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return &SocialMediaResult{Link: row, Cleanup: outcome}, nil
}

func (s *SocialMediaService) Delete(ctx context.Context, id string) (assetstore.CleanupOutcome, error) {
	row, err := s.socialRepo.GetByID(ctx, id)
	if err != nil {
		return assetstore.CleanupOutcome{}, lookupErr(err, "Social media link", id)
	}
	if err := s.socialRepo.Delete(ctx, id); err != nil {
		return assetstore.CleanupOutcome{}, models.NewPersistenceError(err)
	}

	outcome := assetstore.BestEffortRemove(ctx, s.assets, row.Photo)
	if outcome.Failed() {
		middleware.Logger.WarnContext(ctx, "failed to remove social photo after delete", "reference", row.Photo, "error", outcome.Err)
	}
	return outcome, nil
}
