package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPreferencesEmptyIsPassThrough(t *testing.T) {
	plan := basePlan(t)
	out, notes := ApplyPreferences(plan, nil)

	assert.Equal(t, plan, out)
	assert.Empty(t, notes)
}

func TestApplyPreferencesOneNotePerActiveToggle(t *testing.T) {
	_, notes := ApplyPreferences(basePlan(t), []PreferenceType{PrefSpicy, PrefLowSalt, PrefHighProtein})

	assert.Len(t, notes, 3)
}

func TestPreferenceLastToggleWins(t *testing.T) {
	plan := basePlan(t)

	// PrefVegetarian and PrefBudget both overwrite the dinner main;
	// PrefBudget is declared later, so the pair must match PrefBudget alone
	// on that field.
	both, _ := ApplyPreferences(plan, []PreferenceType{PrefVegetarian, PrefBudget})
	budgetOnly, _ := ApplyPreferences(plan, []PreferenceType{PrefBudget})

	assert.Equal(t, budgetOnly.Dinner.Main, both.Dinner.Main)
	assert.Equal(t, budgetOnly.Dinner.Summary, both.Dinner.Summary)
}

func TestPreferenceOrderIsDeclarationOrderNotCallOrder(t *testing.T) {
	plan := basePlan(t)

	a, _ := ApplyPreferences(plan, []PreferenceType{PrefVegetarian, PrefBudget})
	b, _ := ApplyPreferences(plan, []PreferenceType{PrefBudget, PrefVegetarian})

	assert.Equal(t, a, b)
}

func TestApplyPreferencesRederivesSummaries(t *testing.T) {
	out, _ := ApplyPreferences(basePlan(t), []PreferenceType{PrefFishForward})

	assert.Equal(t, "grilled white fish", out.Dinner.Main)
	assert.Contains(t, out.Dinner.Summary, "grilled white fish")
}

func TestApplyPreferencesNutrientTogglesKeepInvariant(t *testing.T) {
	out, _ := ApplyPreferences(basePlan(t), []PreferenceType{PrefHighProtein, PrefWeightLoss})

	for _, slot := range Slots {
		n := out.Meal(slot).Nutrient
		assert.Equal(t, 100, n.Carb+n.Protein+n.Fat, slot)
	}
}

func TestApplyPreferencesCoversEveryTag(t *testing.T) {
	require.Len(t, preferenceRules, 20)

	seen := make(map[PreferenceType]bool)
	for _, rule := range preferenceRules {
		assert.False(t, seen[rule.pref], "duplicate rule for %s", rule.pref)
		seen[rule.pref] = true
		assert.NotEmpty(t, rule.note)
	}
}

func TestApplyPreferencesSideTogglesWithNoSides(t *testing.T) {
	plan := basePlan(t)
	for _, slot := range MainSlots {
		m := plan.Meal(slot)
		m.Sides = nil
		m.refreshSummary(slot)
	}

	out, notes := ApplyPreferences(plan, []PreferenceType{PrefColdFood})
	assert.Equal(t, []string{"chilled cucumber strips"}, out.Dinner.Sides)
	require.Len(t, notes, 1)

	out, notes = ApplyPreferences(plan, []PreferenceType{PrefLowSalt})
	for _, slot := range MainSlots {
		assert.Equal(t, []string{lowSodiumSide}, out.Meal(slot).Sides)
	}
	require.Len(t, notes, 1)
}

func TestApplyPreferencesDoesNotMutateInput(t *testing.T) {
	plan := basePlan(t)
	before := plan.Clone()

	ApplyPreferences(plan, []PreferenceType{PrefVegetarian, PrefLowSalt, PrefEasyDigest})

	assert.Equal(t, before, plan)
}
