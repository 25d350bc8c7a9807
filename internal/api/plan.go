package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oncoplate/backend/internal/mealplan"
	"github.com/oncoplate/backend/internal/service"
)

// PlanHandler exposes the generated daily meal plans.
type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:date", h.GetPlan)
		plans.GET("/:date/notes", h.GetPlanNotes)
	}
}

// GetPlan returns the plan for the date, generating it on first request.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dateKey := c.Param("date")
	if !validDateKey(dateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record, err := h.planService.GetOrGeneratePlan(c.Request.Context(), userID, dateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan"})
		return
	}

	var plan mealplan.DayPlan
	if err := json.Unmarshal(record.Plan, &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       record.Date,
		"stage_type": record.StageType,
		"plan":       plan,
		"notes":      []string(record.Notes),
	})
}

// GetPlanNotes returns only the optimizer explanations for the date's plan,
// generating the plan first if needed.
func (h *PlanHandler) GetPlanNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dateKey := c.Param("date")
	if !validDateKey(dateKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	record, err := h.planService.GetOrGeneratePlan(c.Request.Context(), userID, dateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  record.Date,
		"notes": []string(record.Notes),
	})
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
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

	records, err := h.planService.ListPlans(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
		return
	}

	out := make([]gin.H, 0, len(records))
	for _, record := range records {
		var plan mealplan.DayPlan
		if err := json.Unmarshal(record.Plan, &plan); err != nil {
			continue
		}
		out = append(out, gin.H{
			"date":       record.Date,
			"stage_type": record.StageType,
			"plan":       plan,
			"notes":      []string(record.Notes),
		})
	}
	c.JSON(http.StatusOK, gin.H{"plans": out})
}
