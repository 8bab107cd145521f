// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// About is the single free-text description shown on the landing page.
// The application keeps at most one row; Slot is always 1 and carries a
// unique index so the database enforces the same invariant.
type About struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Slot        int       `gorm:"uniqueIndex;default:1" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key and pins the singleton slot.
func (a *About) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Slot = 1
	return nil
}
