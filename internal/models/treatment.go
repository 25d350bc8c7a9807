package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TreatmentStage records one phase of a user's treatment plan. At most one
// stage per user carries the "active" status at a time.
type TreatmentStage struct {
	ID         uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	StageType  string         `gorm:"size:30;not null" json:"stage_type"`
	Label      string         `gorm:"size:100" json:"label"`
	StageOrder int            `gorm:"not null;default:1" json:"stage_order"`
	Status     string         `gorm:"size:20;not null;default:'planned'" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *TreatmentStage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// MedicationSchedule ties a medication to the meal it is taken with.
// Timing is one of breakfast, lunch or dinner.
type MedicationSchedule struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Category  string         `gorm:"size:50" json:"category"`
	Timing    string         `gorm:"size:20;not null" json:"timing"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *MedicationSchedule) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
