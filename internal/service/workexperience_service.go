package service

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

// WorkExperienceService manages the work history timeline. Entries have no
// companion asset.
type WorkExperienceService struct {
	workRepo repository.WorkExperienceRepository
}

type WorkExperienceInput struct {
	CompanyName string
	Position    string
	StartDate   string
	// EndDate empty means the position is ongoing.
	EndDate     string
	Description string
}

func NewWorkExperienceService(workRepo repository.WorkExperienceRepository) *WorkExperienceService {
	return &WorkExperienceService{workRepo: workRepo}
}

type workExperienceFields struct {
	companyName string
	position    string
	startDate   time.Time
	endDate     *time.Time
	description *string
}

func validateWorkExperience(in WorkExperienceInput) (*workExperienceFields, error) {
	v := validation.New()
	company := v.Required("companyName", in.CompanyName)
	v.MinLen("companyName", company, 3)
	v.MaxLen("companyName", company, 100)
	position := v.Required("position", in.Position)
	v.MinLen("position", position, 3)
	v.MaxLen("position", position, 100)

	start := v.Required("startDate", in.StartDate)
	var startDate time.Time
	if start != "" {
		startDate = v.Date("startDate", start)
	}

	var endDate *time.Time
	if end := strings.TrimSpace(in.EndDate); end != "" {
		parsed := v.Date("endDate", end)
		if !parsed.IsZero() {
			if !startDate.IsZero() && parsed.Before(startDate) {
				v.Add("endDate", "endDate must not be before startDate")
			}
			if parsed.After(time.Now()) {
				v.Add("endDate", "endDate must not be in the future")
			}
			endDate = &parsed
		}
	}

	var description *string
	if d := strings.TrimSpace(in.Description); d != "" {
		v.MinLen("description", d, 3)
		v.MaxLen("description", d, 500)
		description = &d
	}

	if err := v.Err(); err != nil {
		return nil, err
	}
	return &workExperienceFields{
		companyName: company,
		position:    position,
		startDate:   startDate,
		endDate:     endDate,
		description: description,
	}, nil
}

func (s *WorkExperienceService) List(ctx context.Context) ([]models.WorkExperience, error) {
	entries, err := s.workRepo.List(ctx)
	if err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return entries, nil
}

func (s *WorkExperienceService) Get(ctx context.Context, id string) (*models.WorkExperience, error) {
	entry, err := s.workRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Work experience", id)
	}
	return entry, nil
}

func (s *WorkExperienceService) Create(ctx context.Context, in WorkExperienceInput) (*models.WorkExperience, error) {
	fields, err := validateWorkExperience(in)
	if err != nil {
		return nil, err
	}

	entry := &models.WorkExperience{
		CompanyName: fields.companyName,
		Position:    fields.position,
		StartDate:   fields.startDate,
		EndDate:     fields.endDate,
		Description: fields.description,
	}
	if err := s.workRepo.Create(ctx, entry); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return entry, nil
}

func (s *WorkExperienceService) Update(ctx context.Context, id string, in WorkExperienceInput) (*models.WorkExperience, error) {
	fields, err := validateWorkExperience(in)
	if err != nil {
		return nil, err
	}

	entry, err := s.workRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Work experience", id)
	}

	if entry.CompanyName == fields.companyName &&
		entry.Position == fields.position &&
		entry.StartDate.Equal(fields.startDate) &&
		sameOptionalTime(entry.EndDate, fields.endDate) &&
		sameOptionalString(entry.Description, fields.description) {
		return entry, nil
	}

	entry.CompanyName = fields.companyName
	entry.Position = fields.position
	entry.StartDate = fields.startDate
	entry.EndDate = fields.endDate
	entry.Description = fields.description
	if err := s.workRepo.Update(ctx, entry); err != nil {
		return nil, models.NewPersistenceError(err)
	}
	return entry, nil
}

func (s *WorkExperienceService) Delete(ctx context.Context, id string) error {
	if _, err := s.workRepo.GetByID(ctx, id); err != nil {
		return lookupErr(err, "Work experience", id)
	}
	if err := s.workRepo.Delete(ctx, id); err != nil {
		return models.NewPersistenceError(err)
	}
	return nil
}

func sameOptionalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func sameOptionalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
