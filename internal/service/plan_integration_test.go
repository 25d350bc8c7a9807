package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncoplate/backend/internal/mealplan"
	"github.com/oncoplate/backend/internal/models"
	"github.com/oncoplate/backend/internal/testhelpers"
)

// Exercises the full generation path against real PostgreSQL, including the
// jsonb plan column and the unique (user_id, date) index.
func TestPlanServiceAgainstPostgres(t *testing.T) {
	db := testhelpers.SetupPostgres(t)

	user := models.User{Name: "Integration User", Email: "integration@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	profile := models.UserProfile{
		UserID:      user.ID,
		Age:         62,
		Sex:         "male",
		HeightCm:    172,
		WeightKg:    80,
		CancerType:  "stomach cancer",
		CancerStage: "stage 3",
	}
	require.NoError(t, db.Create(&profile).Error)

	stage := models.TreatmentStage{UserID: user.ID, StageType: mealplan.StageChemo, StageOrder: 1, Status: "active"}
	require.NoError(t, db.Create(&stage).Error)

	med := models.MedicationSchedule{UserID: user.ID, Name: "warfarin", Category: "anticoagulant", Timing: "dinner"}
	require.NoError(t, db.Create(&med).Error)

	svc := NewPlanService(db, nil)

	record, err := svc.GetOrGeneratePlan(context.Background(), user.ID, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, mealplan.StageChemo, record.StageType)
	assert.NotEmpty(t, record.Notes)

	// The stored jsonb row round-trips back into the engine's shape.
	var fetched models.MealPlan
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, "2024-03-15").First(&fetched).Error)

	var plan mealplan.DayPlan
	require.NoError(t, json.Unmarshal(fetched.Plan, &plan))
	assert.Equal(t, "2024-03-15", plan.Date)
	assert.NotEmpty(t, plan.Dinner.Main)

	// A week of consecutive plans never trips the unique index and each day
	// reads the previous days back as its anti-repetition window.
	for _, date := range []string{"2024-03-16", "2024-03-17", "2024-03-18"} {
		_, err := svc.GetOrGeneratePlan(context.Background(), user.ID, date)
		require.NoError(t, err)
	}

	plans, err := svc.ListPlans(context.Background(), user.ID, "2024-03-15", "2024-03-18")
	require.NoError(t, err)
	assert.Len(t, plans, 4)
}
