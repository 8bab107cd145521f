package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialMedia is a social profile link with its platform icon in the asset store.
type SocialMedia struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Platform  string    `gorm:"not null" json:"platform"`
	URL       string    `gorm:"not null" json:"url"`
	Photo     string    `gorm:"not null" json:"photo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *SocialMedia) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
