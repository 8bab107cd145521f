package service

import (
	"context"

	"portfolio/internal/assetstore"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

const maxCVBytes = 5 * 1024 * 1024

// HomeService manages the single home section and its CV document.
type HomeService struct {
	homeRepo repository.HomeRepository
	assets   assetstore.Store
}

type CreateHomeInput struct {
	Motto string
	CV    *models.FileUpload
}

type UpdateHomeInput struct {
	Motto string
	CV    *models.FileUpload
}

// HomeResult pairs the persisted row with the outcome of any asset cleanup
// the operation attempted.
type HomeResult struct {
	Home    *models.Home
	Cleanup assetstore.CleanupOutcome
	// NoChange is set when an update matched the stored row exactly and
	// nothing was written.
	NoChange bool
}

func NewHomeService(homeRepo repository.HomeRepository, assets assetstore.Store) *HomeService {
	return &HomeService{homeRepo: homeRepo, assets: assets}
}

func (s *HomeService) Get(ctx context.Context) (*models.Home, error) {
	home, err := s.homeRepo.First(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, models.NewNotFoundError("Home section", "any")
		}
		return nil, models.NewPersistenceError(err)
	}
	return home, nil
}

func cvRules(required bool) validation.FileRules {
	return validation.FileRules{
		Required:    required,
		MaxBytes:    maxCVBytes,
		Types:       []string{"application/pdf"},
		TypeMessage: "cv must be a PDF document",
	}
}

func (s *HomeService) Create(ctx context.Context, in CreateHomeInput) (*models.Home, error) {
	v := validation.New()
	motto := v.Required("motto", in.Motto)
	v.MinLen("motto", motto, 3)
	v.MaxLen("motto", motto, 1000)
	v.File("cv", in.CV, cvRules(true))
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.homeRepo.First(ctx); err == nil {
		return nil, models.NewConflictError("Home section already exists")
	} else if !isNotFound(err) {
		return nil, models.NewPersistenceError(err)
	}

	cvLink, err := s.assets.Store(ctx, in.CV, assetstore.FolderCVFiles)
	if err != nil {
		return nil, models.NewUploadError(err)
	}

	home := &models.Home{
		Motto:      motto,
		CVLink:     &cvLink,
		CVFilename: &in.CV.Filename,
	}
	if err := s.homeRepo.Create(ctx, home); err != nil {
		// The row never landed; drop the fresh upload so it does not leak.
		if outcome := assetstore.BestEffortRemove(ctx, s.assets, cvLink); outcome.Failed() {
			middleware.Logger.WarnContext(ctx, "orphaned CV upload after failed create", "reference", cvLink, "error", outcome.Err)
		}
		return nil, models.NewPersistenceError(err)
	}
	return home, nil
}

func (s *HomeService) Update(ctx context.Context, id string, in UpdateHomeInput) (*HomeResult, error) {
	v := validation.New()
	motto := v.Required("motto", in.Motto)
	v.MinLen("motto", motto, 3)
	v.MaxLen("motto", motto, 1000)
	v.File("cv", in.CV, cvRules(false))
	if err := v.Err(); err != nil {
		return nil, err
	}

	home, err := s.homeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Home section", id)
	}

	if home.Motto == motto && in.CV == nil {
		return &HomeResult{Home: home, NoChange: true}, nil
	}

	var outcome assetstore.CleanupOutcome
	if in.CV != nil {
		oldRef := ""
		if home.CVLink != nil {
			oldRef = *home.CVLink
		}
		newRef, cleanup, err := assetstore.Replace(ctx, s.assets, oldRef, in.CV, assetstore.FolderCVFiles)
		if err != nil {
			return nil, models.NewUploadError(err)
		}
		outcome = cleanup
		if outcome.Failed() {
			middleware.Logger.WarnContext(ctx, "failed to remove superseded CV", "reference", oldRef, "error", outcome.Err)
		}
		home.CVLink = &newRef
		home.CVFilename = &in.CV.Filename
	}

	home.Motto = motto
	if err := s.homeRepo.Update(ctx, home); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return &HomeResult{Home: home, Cleanup: outcome}, nil
}

func (s *HomeService) Delete(ctx context.Context, id string) (assetstore.CleanupOutcome, error) {
	home, err := s.homeRepo.GetByID(ctx, id)
	if err != nil {
		return assetstore.CleanupOutcome{}, lookupErr(err, "Home section", id)
	}
	if err := s.homeRepo.Delete(ctx, id); err != nil {
		return assetstore.CleanupOutcome{}, models.NewPersistenceError(err)
	}

	ref := ""
	if home.CVLink != nil {
		ref = *home.CVLink
	}
	outcome := assetstore.BestEffortRemove(ctx, s.assets, ref)
	if outcome.Failed() {
		middleware.Logger.WarnContext(ctx, "failed to remove CV after delete", "reference", ref, "error", outcome.Err)
	}
	return outcome, nil
}
