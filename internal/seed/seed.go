// Package seed provides helpers to create the admin account and demo content
// for the portfolio database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"time"

	"portfolio/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with an admin account and demo content.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll removes all seeded content. Join rows go first so foreign keys
// never block the wipe.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.TechStack{},
		&models.Project{},
		&models.Skill{},
		&models.SocialMedia{},
		&models.WorkExperience{},
		&models.About{},
		&models.Home{},
		&models.Admin{},
	}
	for _, table := range tables {
		if err := s.db.Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}
	return nil
}

// SeedAdmin creates the admin account with a bcrypt-hashed password.
// Existing accounts with the same email are left untouched.
func (s *Seeder) SeedAdmin(name, email, password string) (*models.Admin, error) {
	var existing models.Admin
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin %s already exists, skipping", email)
		return &existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Admin{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

// SeedDemoContent fills every section with plausible demo data.
func (s *Seeder) SeedDemoContent(numSkills, numProjects int) error {
	about := &models.About{
		Description: gofakeit.Paragraph(1, 4, 12, " "),
	}
	if err := s.db.Create(about).Error; err != nil {
		return fmt.Errorf("failed to seed about: %w", err)
	}

	cvLink := fmt.Sprintf("https://res.cloudinary.com/demo/raw/upload/cv_files/%s.pdf", gofakeit.UUID())
	cvFilename := "cv.pdf"
	home := &models.Home{
		Motto:      gofakeit.Phrase(),
		CVLink:     &cvLink,
		CVFilename: &cvFilename,
	}
	if err := s.db.Create(home).Error; err != nil {
		return fmt.Errorf("failed to seed home: %w", err)
	}

	skills := make([]*models.Skill, 0, numSkills)
	for i := 0; i < numSkills; i++ {
		skill := &models.Skill{
			Name:  fmt.Sprintf("%s %d", gofakeit.ProgrammingLanguage(), i),
			Photo: fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/skills/%s.png", gofakeit.UUID()),
		}
		if err := s.db.Create(skill).Error; err != nil {
			return fmt.Errorf("failed to seed skill: %w", err)
		}
		skills = append(skills, skill)
	}

	for i := 0; i < numProjects; i++ {
		link := gofakeit.URL()
		image := fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/projects/%s.png", gofakeit.UUID())
		project := &models.Project{
			Title:        fmt.Sprintf("%s %d", gofakeit.AppName(), i),
			Description:  gofakeit.Paragraph(1, 3, 8, " "),
			Link:         &link,
			ProjectImage: &image,
		}
		for _, skill := range pickSkills(skills, 3) {
			project.TechStack = append(project.TechStack, models.TechStack{SkillID: skill.ID})
		}
		if err := s.db.Create(project).Error; err != nil {
			return fmt.Errorf("failed to seed project: %w", err)
		}
	}

	platforms := []string{"GitHub", "LinkedIn", "Twitter"}
	for _, platform := range platforms {
		link := &models.SocialMedia{
			Platform: platform,
			URL:      gofakeit.URL(),
			Photo:    fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/social-media-photos/%s.png", gofakeit.UUID()),
		}
		if err := s.db.Create(link).Error; err != nil {
			return fmt.Errorf("failed to seed social media: %w", err)
		}
	}

	now := time.Now()
	for i := 0; i < 3; i++ {
		start := now.AddDate(-(i + 1), 0, 0)
		description := gofakeit.Paragraph(1, 2, 8, " ")
		entry := &models.WorkExperience{
			CompanyName: gofakeit.Company(),
			Position:    gofakeit.JobTitle(),
			StartDate:   start,
			Description: &description,
		}
		if i > 0 {
			end := start.AddDate(1, 0, 0)
			entry.EndDate = &end
		}
		if err := s.db.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to seed work experience: %w", err)
		}
	}

	return nil
}

func pickSkills(skills []*models.Skill, n int) []*models.Skill {
	if len(skills) <= n {
		return skills
	}
	idx := indexes(len(skills))
	gofakeit.ShuffleInts(idx)
	picked := make([]*models.Skill, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, skills[i])
	}
	return picked
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
