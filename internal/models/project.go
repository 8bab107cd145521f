package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry. ProjectImage is nullable: projects without a
// screenshot are valid. TechStack rows associate the project with its skills.
type Project struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string      `gorm:"not null" json:"title"`
	Description  string      `gorm:"type:text;not null" json:"description"`
	Link         *string     `json:"link"`
	ProjectImage *string     `json:"projectImage"`
	TechStack    []TechStack `gorm:"foreignKey:ProjectID" json:"techStack"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TechStack joins a project to one of its skills.
type TechStack struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID string `gorm:"type:uuid;not null;index" json:"projectId"`
	SkillID   string `gorm:"type:uuid;not null;index" json:"skillId"`
	Skill     Skill  `gorm:"foreignKey:SkillID" json:"skill"`
}

func (t *TechStack) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
