package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oncoplate/backend/internal/models"
	"github.com/oncoplate/backend/internal/types"
)

// ProfileHandler serves the user's diet profile, treatment stages,
// medications and preference tags.
type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/preferences", h.GetPreferences)
		profile.PUT("/preferences", h.SetPreferences)
		profile.GET("/stages", h.ListStages)
		profile.POST("/stages", h.SetStage)
		profile.GET("/medications", h.ListMedications)
		profile.POST("/medications", h.AddMedication)
		profile.DELETE("/medications/:id", h.DeleteMedication)
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var profile models.UserProfile
	err := h.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	profile.UserID = userID

	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Sex != nil {
		profile.Sex = *req.Sex
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.Ethnicity != nil {
		profile.Ethnicity = *req.Ethnicity
	}
	if req.CancerType != nil {
		profile.CancerType = *req.CancerType
	}
	if req.CancerStage != nil {
		profile.CancerStage = *req.CancerStage
	}

	if err := h.db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var rows []models.DietaryPreference
	if err := h.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}
	prefs := make([]string, 0, len(rows))
	for _, r := range rows {
		prefs = append(prefs, r.PreferenceType)
	}
	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// SetPreferences replaces the full preference set. Order is preserved
// because later tags win when they steer the same dish.
func (h *ProfileHandler) SetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.SetPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.DietaryPreference{}).Error; err != nil {
			return err
		}
		for _, p := range req.Preferences {
			row := models.DietaryPreference{UserID: userID, PreferenceType: p}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"preferences": req.Preferences})
}

func (h *ProfileHandler) ListStages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var stages []models.TreatmentStage
	if err := h.db.Where("user_id = ?", userID).Order("stage_order ASC").Find(&stages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

// SetStage records a new treatment stage. An "active" stage demotes the
// previous active one to "done" so the planner sees a single active stage.
func (h *ProfileHandler) SetStage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.SetStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	stage := models.TreatmentStage{
		UserID:     userID,
		StageType:  req.StageType,
		Label:      req.Label,
		StageOrder: req.StageOrder,
		Status:     status,
	}
	if stage.StageOrder == 0 {
		stage.StageOrder = 1
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if status == "active" {
			if err := tx.Model(&models.TreatmentStage{}).
				Where("user_id = ? AND status = ?", userID, "active").
				Update("status", "done").Error; err != nil {
				return err
			}
		}
		return tx.Create(&stage).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save stage"})
		return
	}
	c.JSON(http.StatusCreated, stage)
}

func (h *ProfileHandler) ListMedications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var meds []models.MedicationSchedule
	if err := h.db.Where("user_id = ?", userID).Find(&meds).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"medications": meds})
}

func (h *ProfileHandler) AddMedication(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med := models.MedicationSchedule{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		Timing:   req.Timing,
	}
	if err := h.db.Create(&med).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save medication"})
		return
	}
	c.JSON(http.StatusCreated, med)
}

func (h *ProfileHandler) DeleteMedication(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	medID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication ID"})
		return
	}

	result := h.db.Where("id = ? AND user_id = ?", medID, userID).Delete(&models.MedicationSchedule{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete medication"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
