package types

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for obtaining a token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest updates the diet profile fields the planner reads.
// Pointer fields are applied only when present.
type UpdateProfileRequest struct {
	Age         *int     `json:"age,omitempty"`
	Sex         *string  `json:"sex,omitempty"`
	HeightCm    *float64 `json:"height_cm,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
	Ethnicity   *string  `json:"ethnicity,omitempty"`
	CancerType  *string  `json:"cancer_type,omitempty"`
	CancerStage *string  `json:"cancer_stage,omitempty"`
}

// LogItemRequest is one tracked food entry in a day-log upsert.
type LogItemRequest struct {
	Slot     string `json:"slot" binding:"required,oneof=breakfast lunch dinner snack"`
	Name     string `json:"name" binding:"required"`
	Eaten    bool   `json:"eaten"`
	NotEaten bool   `json:"not_eaten"`
	Servings int    `json:"servings"`
}

// UpsertLogRequest replaces one day's log items.
type UpsertLogRequest struct {
	Items []LogItemRequest `json:"items" binding:"required"`
}

// SetPreferencesRequest replaces the user's active preference tags.
type SetPreferencesRequest struct {
	Preferences []string `json:"preferences" binding:"required"`
}

// SetStageRequest creates or replaces the active treatment stage.
type SetStageRequest struct {
	StageType  string `json:"stage_type" binding:"required"`
	Label      string `json:"label"`
	StageOrder int    `json:"stage_order"`
	Status     string `json:"status" binding:"omitempty,oneof=planned active done"`
}

// MedicationRequest adds a medication schedule entry.
type MedicationRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Timing   string `json:"timing" binding:"required,oneof=breakfast lunch dinner"`
}
