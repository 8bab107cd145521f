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

const maxProjectImageBytes = 5 * 1024 * 1024

// ProjectService manages projects, their tech stack links and cover images.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	skillRepo   repository.SkillRepository
	assets      assetstore.Store
}

type CreateProjectInput struct {
	Title       string
	Description string
	Link        string
	SkillIDs    []string
	Image       *models.FileUpload
}

type UpdateProjectInput struct {
	Title       string
	Description string
	Link        string
	SkillIDs    []string
	Image       *models.FileUpload
}

// ProjectResult pairs the persisted row with the outcome of any asset cleanup
// the operation attempted.
type ProjectResult struct {
	Project  *models.Project
	Cleanup  assetstore.CleanupOutcome
	NoChange bool
}

func NewProjectService(projectRepo repository.ProjectRepository, skillRepo repository.SkillRepository, assets assetstore.Store) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, skillRepo: skillRepo, assets: assets}
}

func projectImageRules() validation.FileRules {
	return validation.FileRules{
		MaxBytes:    maxProjectImageBytes,
		Types:       []string{"image/jpeg", "image/png", "image/webp"},
		TypeMessage: "projectImage must be a JPEG, PNG or WebP image",
	}
}

func (s *ProjectService) validate(in *UpdateProjectInput) (string, string, string, error) {
	v := validation.New()
	title := v.Required("title", in.Title)
	v.MaxLen("title", title, 100)
	description := v.Required("description", in.Description)
	v.MinLen("description", description, 10)
	v.MaxLen("description", description, 1000)
	link := strings.TrimSpace(in.Link)
	v.OptionalURL("link", link)
	if len(in.SkillIDs) == 0 {
		v.Add("skills", "skills must contain at least one skill")
	}
	v.UUIDs("skills", in.SkillIDs)
	v.File("projectImage", in.Image, projectImageRules())
	return title, description, link, v.Err()
}

// checkSkills verifies every referenced skill exists.
func (s *ProjectService) checkSkills(ctx context.Context, ids []string) error {
	count, err := s.skillRepo.CountExisting(ctx, ids)
	if err != nil {
		return models.NewPersistenceError(err)
	}
	if count != int64(len(uniqueStrings(ids))) {
		return models.NewValidationError("One or more skills do not exist")
	}
	return nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Project", id)
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	up := UpdateProjectInput(in)
	title, description, link, err := s.validate(&up)
	if err != nil {
		return nil, err
	}
	skillIDs := uniqueStrings(in.SkillIDs)
	if err := s.checkSkills(ctx, skillIDs); err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.GetByTitle(ctx, title); err == nil {
		return nil, models.NewConflictError("Project with this title already exists")
	} else if !isNotFound(err) {
		return nil, models.NewPersistenceError(err)
	}

	var imageRef *string
	if in.Image != nil {
		ref, err := s.assets.Store(ctx, in.Image, assetstore.FolderProjects)
		if err != nil {
			return nil, models.NewUploadError(err)
		}
		imageRef = &ref
	}

	project := &models.Project{
		Title:        title,
		Description:  description,
		ProjectImage: imageRef,
	}
	if link != "" {
		project.Link = &link
	}
	for _, skillID := range skillIDs {
		project.TechStack = append(project.TechStack, models.TechStack{SkillID: skillID})
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		if imageRef != nil {
			if outcome := assetstore.BestEffortRemove(ctx, s.assets, *imageRef); outcome.Failed() {
				middleware.Logger.WarnContext(ctx, "orphaned project image after failed create", "reference", *imageRef, "error", outcome.Err)
			}
		}
		return nil, models.NewPersistenceError(err)
	}

	created, err := s.projectRepo.GetByID(ctx, project.ID)
	if err != nil {
		return project, nil
	}
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in UpdateProjectInput) (*ProjectResult, error) {
	title, description, link, err := s.validate(&in)
	if err != nil {
		return nil, err
	}
	skillIDs := uniqueStrings(in.SkillIDs)
	if err := s.checkSkills(ctx, skillIDs); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Project", id)
	}

	if in.Image == nil &&
		project.Title == title &&
		project.Description == description &&
		derefOr(project.Link, "") == link &&
		sameSkillSet(project.TechStack, skillIDs) {
		return &ProjectResult{Project: project, NoChange: true}, nil
	}

	// Renaming onto another project's title would violate uniqueness.
	if project.Title != title {
		if other, err := s.projectRepo.GetByTitle(ctx, title); err == nil && other.ID != project.ID {
			return nil, models.NewConflictError("Project with this title already exists")
		} else if err != nil && !isNotFound(err) {
			return nil, models.NewPersistenceError(err)
		}
	}

	var outcome assetstore.CleanupOutcome
	if in.Image != nil {
		oldRef := derefOr(project.ProjectImage, "")
		newRef, cleanup, err := assetstore.Replace(ctx, s.assets, oldRef, in.Image, assetstore.FolderProjects)
		if err != nil {
			return nil, models.NewUploadError(err)
		}
		outcome = cleanup
		if outcome.Failed() {
			middleware.Logger.WarnContext(ctx, "failed to remove superseded project image", "reference", oldRef, "error", outcome.Err)
		}
		project.ProjectImage = &newRef
	}

	project.Title = title
	project.Description = description
	if link != "" {
		project.Link = &link
	} else {
		project.Link = nil
	}

	if err := s.projectRepo.Update(ctx, project, skillIDs); err != nil {
		return nil, models.NewPersistenceError(err)
	}

	updated, err := s.projectRepo.GetByID(ctx, project.ID)
	if err != nil {
		return &ProjectResult{Project: project, Cleanup: outcome}, nil
	}
	return &ProjectResult{Project: updated, Cleanup: outcome}, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) (assetstore.CleanupOutcome, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return assetstore.CleanupOutcome{}, lookupErr(err, "Project", id)
	}
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return assetstore.CleanupOutcome{}, models.NewPersistenceError(err)
	}

	outcome := assetstore.BestEffortRemove(ctx, s.assets, derefOr(project.ProjectImage, ""))
	if outcome.Failed() {
		middleware.Logger.WarnContext(ctx, "failed to remove project image after delete", "reference", *project.ProjectImage, "error", outcome.Err)
	}
	return outcome, nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func sameSkillSet(links []models.TechStack, skillIDs []string) bool {
	if len(links) != len(skillIDs) {
		return false
	}
	have := make(map[string]struct{}, len(links))
	for _, l := range links {
		have[l.SkillID] = struct{}{}
	}
	for _, id := range skillIDs {
		if _, ok := have[id]; !ok {
			return false
		}
	}
	return true
}
