package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlanIsDeterministic(t *testing.T) {
	a := BuildPlan("2024-03-15", StageChemo, 70, nil)
	b := BuildPlan("2024-03-15", StageChemo, 70, nil)

	assert.Equal(t, a, b)
}

func TestBuildPlanDeterministicWithPreferences(t *testing.T) {
	prefs := []PreferenceType{PrefLowSalt, PrefHighProtein}
	a := BuildPlan("2024-07-02", StageHormone, 40, prefs)
	b := BuildPlan("2024-07-02", StageHormone, 40, prefs)

	assert.Equal(t, a, b)
}

func TestBuildPlanStructure(t *testing.T) {
	plan := BuildPlan("2024-03-15", StageChemo, 70, nil)

	require.Equal(t, "2024-03-15", plan.Date)
	for _, slot := range MainSlots {
		m := plan.Meal(slot)
		assert.NotEmpty(t, m.RiceType, slot)
		assert.NotEmpty(t, m.Main, slot)
		assert.NotEmpty(t, m.Soup, slot)
		assert.Len(t, m.Sides, 3, slot)
		assert.NotEmpty(t, m.Summary, slot)
		assert.NotEmpty(t, m.RecipeName, slot)
		assert.NotEmpty(t, m.RecipeSteps, slot)
		assert.Equal(t, 100, m.Nutrient.Carb+m.Nutrient.Protein+m.Nutrient.Fat, slot)
	}

	assert.Empty(t, plan.Snack.RiceType)
	assert.NotEmpty(t, plan.Snack.Main)
	assert.Equal(t, snackBaseline, plan.Snack.Nutrient)
}

func TestBuildPlanSharedRiceType(t *testing.T) {
	plan := BuildPlan("2025-11-03", StageDiagnosis, 80, nil)

	assert.Equal(t, plan.Breakfast.RiceType, plan.Lunch.RiceType)
	assert.Equal(t, plan.Lunch.RiceType, plan.Dinner.RiceType)
}

func TestBuildPlanFlourCautionByHistoryScore(t *testing.T) {
	gentle := BuildPlan("2024-03-15", StageChemo, 59, nil)
	strict := BuildPlan("2024-03-15", StageChemo, 60, nil)

	assert.Equal(t, flourCautionGentle, gentle.Breakfast.FlourCaution)
	assert.Equal(t, flourCautionStrict, strict.Breakfast.FlourCaution)
}

func TestBuildPlanStageGroupBaselines(t *testing.T) {
	soft := BuildPlan("2024-03-15", StageChemo, 70, nil)
	lower := BuildPlan("2024-03-15", StageHormone, 70, nil)
	def := BuildPlan("2024-03-15", StageDiagnosis, 70, nil)

	assert.Equal(t, baselineByGroup[groupSoft][SlotLunch], soft.Lunch.Nutrient)
	assert.Equal(t, baselineByGroup[groupLowerCarb][SlotLunch], lower.Lunch.Nutrient)
	assert.Equal(t, baselineByGroup[groupDefault][SlotLunch], def.Lunch.Nutrient)

	// Carbohydrate share steps down through the day in every group.
	for _, plan := range []DayPlan{soft, lower, def} {
		assert.Greater(t, plan.Breakfast.Nutrient.Carb, plan.Lunch.Nutrient.Carb)
		assert.Greater(t, plan.Lunch.Nutrient.Carb, plan.Dinner.Nutrient.Carb)
	}
}

func TestBuildPlanDifferentDatesDiffer(t *testing.T) {
	a := BuildPlan("2024-03-15", StageChemo, 70, nil)
	b := BuildPlan("2024-03-16", StageChemo, 70, nil)

	assert.NotEqual(t, a.Lunch.Summary, b.Lunch.Summary)
}

func TestBuildPlanMalformedDateStillValid(t *testing.T) {
	plan := BuildPlan("not-a-date", StageChemo, 70, nil)

	assert.NotEmpty(t, plan.Breakfast.Main)
	assert.NotEmpty(t, plan.Snack.Main)
}

func TestBuildPlanSeasonalSideFollowsMonth(t *testing.T) {
	// The first side of each main meal comes from the month's seasonal bucket
	// merged with the generic pool.
	plan := BuildPlan("2024-05-10", StageDiagnosis, 70, nil)
	pool := seasonalPool(5)

	assert.Contains(t, pool, plan.Lunch.Sides[0])
}
