package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oncoplate/backend/internal/models"
	"github.com/oncoplate/backend/internal/types"
)

// LogHandler records what the user actually ate each day. The intake
// optimizer reads these logs back when generating the next plan.
type LogHandler struct {
	db *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{db: db}
}

func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("", h.ListLogs)
		logs.GET("/:date", h.GetLog)
		logs.PUT("/:date", h.UpsertLog)
	}
}

func validDateKey(dateKey string) bool {
	_, err := time.Parse("2006-01-02", dateKey)
	return err == nil
}

func (h *LogHandler) ListLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if !validDateKey(from) || !validDateKey(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be YYYY-MM-DD dates"})
		return
	}

	var logs []models.MealLog
	err := h.db.Preload("Items").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *LogHandler) GetLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dateKey := c.Param("date")
	if !validDateKey(dateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var dayLog models.MealLog
	err := h.db.Preload("Items").
		Where("user_id = ? AND date = ?", userID, dateKey).
		First(&dayLog).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No log for that date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch log"})
		return
	}
	c.JSON(http.StatusOK, dayLog)
}

// UpsertLog replaces the whole day's items in one transaction so a partial
// write never leaves a mixed old/new log behind.
func (h *LogHandler) UpsertLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dateKey := c.Param("date")
	if !validDateKey(dateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var req types.UpsertLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dayLog models.MealLog
	err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date = ?", userID, dateKey).First(&dayLog).Error
		if err == gorm.ErrRecordNotFound {
			dayLog = models.MealLog{UserID: userID, Date: dateKey}
			if err := tx.Create(&dayLog).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Unscoped().Where("meal_log_id = ?", dayLog.ID).Delete(&models.MealLogItem{}).Error; err != nil {
			return err
		}

		items := make([]models.MealLogItem, 0, len(req.Items))
		for _, it := range req.Items {
			servings := it.Servings
			if servings <= 0 {
				servings = 1
			}
			items = append(items, models.MealLogItem{
				MealLogID: dayLog.ID,
				Slot:      it.Slot,
				Name:      it.Name,
				Eaten:     it.Eaten,
				NotEaten:  it.NotEaten,
				Servings:  servings,
			})
		}
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		dayLog.Items = items
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save log"})
		return
	}
	c.JSON(http.StatusOK, dayLog)
}
