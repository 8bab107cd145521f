package service

import (
	"context"

	"portfolio/internal/assetstore"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

const maxSkillPhotoBytes = 5 * 1024 * 1024

// SkillService manages skills and their icon assets.
type SkillService struct {
	skillRepo repository.SkillRepository
	assets    assetstore.Store
}

type CreateSkillInput struct {
	Name  string
	Photo *models.FileUpload
}

type UpdateSkillInput struct {
	Name  string
	Photo *models.FileUpload
}

// SkillResult pairs the persisted row with the outcome of any asset cleanup
// the operation attempted.
type SkillResult struct {
	Skill    *models.Skill
	Cleanup  assetstore.CleanupOutcome
	NoChange bool
}

func NewSkillService(skillRepo repository.SkillRepository, assets assetstore.Store) *SkillService {
	return &SkillService{skillRepo: skillRepo, assets: assets}
}

func skillPhotoRules(required bool) validation.FileRules {
	return validation.FileRules{
		Required:    required,
		MaxBytes:    maxSkillPhotoBytes,
		Types:       []string{"image/jpeg", "image/jpg", "image/png"},
		TypeMessage: "photo must be a JPEG or PNG image",
	}
}

func (s *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return skills, nil
}

func (s *SkillService) Get(ctx context.Context, id string) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Skill", id)
	}
	return skill, nil
}

func (s *SkillService) Create(ctx context.Context, in CreateSkillInput) (*models.Skill, error) {
	v := validation.New()
	name := v.Required("name", in.Name)
	v.MinLen("name", name, 2)
	v.File("photo", in.Photo, skillPhotoRules(true))
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.skillRepo.GetByName(ctx, name); err == nil {
		return nil, models.NewConflictError("Skill with this name already exists")
	} else if !isNotFound(err) {
		return nil, models.NewPersistenceError(err)
	}

	photo, err := s.assets.Store(ctx, in.Photo, assetstore.FolderSkills)
	if err != nil {
		return nil, models.NewUploadError(err)
	}

	skill := &models.Skill{Name: name, Photo: photo}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		if outcome := assetstore.BestEffortRemove(ctx, s.assets, photo); outcome.Failed() {
			middleware.Logger.WarnContext(ctx, "orphaned skill photo after failed create", "reference", photo, "error", outcome.Err)
		}
		return nil, models.NewPersistenceError(err)
	}
	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, id string, in UpdateSkillInput) (*SkillResult, error) {
	v := validation.New()
	name := v.Required("name", in.Name)
	v.MinLen("name", name, 2)
	v.File("photo", in.Photo, skillPhotoRules(false))
	if err := v.Err(); err != nil {
		return nil, err
	}

	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Skill", id)
	}

	if skill.Name == name && in.Photo == nil {
		return &SkillResult{Skill: skill, NoChange: true}, nil
	}

	// Renaming onto another skill's name would violate uniqueness.
	if skill.Name != name {
		if other, err := s.skillRepo.GetByName(ctx, name); err == nil && other.ID != skill.ID {
			return nil, models.NewConflictError("Skill with this name already exists")
		} else if err != nil && !isNotFound(err) {
			return nil, models.NewPersistenceError(err)
		}
	}

	var outcome assetstore.CleanupOutcome
	if in.Photo != nil {
		newRef, cleanup, err := assetstore.Replace(ctx, s.assets, skill.Photo, in.Photo, assetstore.FolderSkills)
		if err != nil {
			return nil, models.NewUploadError(err)
		}
		outcome = cleanup
		if outcome.Failed() {
			middleware.Logger.WarnContext(ctx, "failed to remove superseded skill photo", "reference", skill.Photo, "error", outcome.Err)
		}
		skill.Photo = newRef
	}

	skill.Name = name
	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return &SkillResult{Skill: skill, Cleanup: outcome}, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) (assetstore.CleanupOutcome, error) {
	skill, err := s.skillRepo.GetByID(ctx, id)
	if err != nil {
		return assetstore.CleanupOutcome{}, lookupErr(err, "Skill", id)
	}
	if err := s.skillRepo.Delete(ctx, id); err != nil {
		return assetstore.CleanupOutcome{}, models.NewPersistenceError(err)
	}

	outcome := assetstore.BestEffortRemove(ctx, s.assets, skill.Photo)
	if outcome.Failed() {
		middleware.Logger.WarnContext(ctx, "failed to remove skill photo after delete", "reference", skill.Photo, "error", outcome.Err)
	}
	return outcome, nil
}
