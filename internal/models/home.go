package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Home holds the hero section's personal information: the motto and the
// downloadable CV stored in the remote asset store. Singleton-by-slot, same
// as About.
type Home struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Motto      string    `gorm:"type:text;not null" json:"motto"`
	CVLink     *string   `json:"cvLink"`
	CVFilename *string   `json:"cvFilename,omitempty"`
	Slot       int       `gorm:"uniqueIndex;default:1" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (h *Home) BeforeCreate(_ *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	h.Slot = 1
	return nil
}
