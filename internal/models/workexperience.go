package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkExperience is one entry in the work history timeline. IsPresent is
// derived: true iff EndDate is nil.
type WorkExperience struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName string     `gorm:"not null" json:"companyName"`
	Position    string     `gorm:"not null" json:"position"`
	StartDate   time.Time  `gorm:"not null" json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsPresent   bool       `json:"isPresent"`
	Description *string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (w *WorkExperience) BeforeCreate(_ *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	w.IsPresent = w.EndDate == nil
	return nil
}

// BeforeSave keeps the derived flag consistent on updates as well.
func (w *WorkExperience) BeforeSave(_ *gorm.DB) error {
	w.IsPresent = w.EndDate == nil
	return nil
}
