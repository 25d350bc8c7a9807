package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealLog is one day's tracked intake for a user, keyed by the YYYY-MM-DD
// date string the engine uses everywhere.
type MealLog struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index:idx_meal_logs_user_date,unique" json:"user_id"`
	Date      string         `gorm:"size:10;not null;index:idx_meal_logs_user_date,unique" json:"date"`
	Items     []MealLogItem  `gorm:"foreignKey:MealLogID" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MealLog) TableName() string {
	return "meal_logs"
}

func (l *MealLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// MealLogItem is one tracked food entry inside a slot of a day's log.
type MealLogItem struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	MealLogID uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"meal_log_id"`
	Slot      string         `gorm:"size:20;not null" json:"slot"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Eaten     bool           `gorm:"not null;default:false" json:"eaten"`
	NotEaten  bool           `gorm:"not null;default:false" json:"not_eaten"`
	Servings  int            `gorm:"not null;default:1" json:"servings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MealLogItem) TableName() string {
	return "meal_log_items"
}

func (i *MealLogItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
