package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// MealPlan stores one generated daily plan. Plan holds the engine's DayPlan
// serialized as JSON; Notes collects the explanations from every
// optimization stage that touched it.
type MealPlan struct {
	ID        uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID        `gorm:"type:varchar(36);not null;index:idx_meal_plans_user_date,unique" json:"user_id"`
	Date      string           `gorm:"size:10;not null;index:idx_meal_plans_user_date,unique" json:"date"`
	StageType string           `gorm:"size:30" json:"stage_type"`
	Plan      json.RawMessage  `gorm:"type:jsonb;not null" json:"plan"`
	Notes     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"notes"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
