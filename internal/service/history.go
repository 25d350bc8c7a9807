package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oncoplate/backend/internal/mealplan"
	"github.com/oncoplate/backend/internal/models"
)

// historyWindowDays is the span of logs that feeds the history score.
const historyWindowDays = 30

// recentPlanWindowDays caps how far back the anti-repetition window reaches.
const recentPlanWindowDays = 14

// loadLogs fetches the user's logs for the given date range and converts
// them to the engine's DayLog shape, keyed by date.
func loadLogs(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to string) (map[string]mealplan.DayLog, error) {
	var logs []models.MealLog
	err := db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]mealplan.DayLog, len(logs))
	for _, l := range logs {
		day := mealplan.DayLog{Date: l.Date}
		for _, item := range l.Items {
			entry := mealplan.LogItem{
				Name:     item.Name,
				Eaten:    item.Eaten,
				NotEaten: item.NotEaten,
				Servings: item.Servings,
			}
			switch mealplan.Slot(item.Slot) {
			case mealplan.SlotBreakfast:
				day.Breakfast = append(day.Breakfast, entry)
			case mealplan.SlotLunch:
				day.Lunch = append(day.Lunch, entry)
			case mealplan.SlotDinner:
				day.Dinner = append(day.Dinner, entry)
			case mealplan.SlotSnack:
				day.Snack = append(day.Snack, entry)
			}
		}
		out[l.Date] = day
	}
	return out, nil
}

// historyScore is the percentage of logged items marked eaten across the
// previous month, used by the builder to pick a flour-caution tone. No logs
// scores zero.
func historyScore(logs map[string]mealplan.DayLog) int {
	total, eaten := 0, 0
	for _, day := range logs {
		for _, items := range [][]mealplan.LogItem{day.Breakfast, day.Lunch, day.Dinner, day.Snack} {
			for _, item := range items {
				total++
				if item.Eaten {
					eaten++
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return eaten * 100 / total
}

// recentPlans loads the stored plans preceding dateKey, most recent first,
// for the anti-repetition window.
func recentPlans(ctx context.Context, db *gorm.DB, userID uuid.UUID, dateKey string) ([]mealplan.DayPlan, error) {
	from := shiftDate(dateKey, -recentPlanWindowDays)
	var stored []models.MealPlan
	err := db.WithContext(ctx).
		Where("user_id = ? AND date < ? AND date >= ?", userID, dateKey, from).
		Order("date DESC").
		Find(&stored).Error
	if err != nil {
		return nil, err
	}

	window := make([]mealplan.DayPlan, 0, len(stored))
	for _, rec := range stored {
		var plan mealplan.DayPlan
		if err := json.Unmarshal(rec.Plan, &plan); err != nil {
			continue // a malformed stored plan should not block generation
		}
		window = append(window, plan)
	}
	return window, nil
}

func shiftDate(dateKey string, days int) string {
	t, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return dateKey
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}
