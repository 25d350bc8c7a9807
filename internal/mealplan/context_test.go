package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePlan(t *testing.T) DayPlan {
	t.Helper()
	return BuildPlan("2024-03-15", StageChemo, 70, nil)
}

func TestApplyContextNoContextIsPassThrough(t *testing.T) {
	plan := basePlan(t)
	out, notes := ApplyContext(plan, UserDietContext{})

	assert.Equal(t, plan, out)
	assert.Empty(t, notes)
}

func TestApplyContextDoesNotMutateInput(t *testing.T) {
	plan := basePlan(t)
	before := plan.Clone()

	ApplyContext(plan, UserDietContext{Age: 70, Sex: "female", CancerType: "breast cancer"})

	assert.Equal(t, before, plan)
}

func TestApplyContextSeniorSoftens(t *testing.T) {
	out, notes := ApplyContext(basePlan(t), UserDietContext{Age: 65})

	assert.Equal(t, softMains[SlotLunch], out.Lunch.Main)
	assert.Equal(t, softSoups[SlotDinner], out.Dinner.Soup)
	assert.Contains(t, out.Lunch.Summary, softMains[SlotLunch])
	assert.Len(t, notes, 1)
}

func TestApplyContextBMIBranchesAreExclusive(t *testing.T) {
	under := UserDietContext{HeightCm: 170, WeightKg: 50} // BMI 17.3
	over := UserDietContext{HeightCm: 160, WeightKg: 70}  // BMI 27.3

	outUnder, _ := ApplyContext(basePlan(t), under)
	assert.Equal(t, denseMains[SlotBreakfast], outUnder.Breakfast.Main)
	assert.Equal(t, proteinSnack.Main, outUnder.Snack.Main)

	outOver, _ := ApplyContext(basePlan(t), over)
	assert.Equal(t, highFiberRice, outOver.Lunch.RiceType)
	assert.Equal(t, lowGlycemicSnack.Main, outOver.Snack.Main)
	assert.NotEqual(t, denseMains[SlotBreakfast], outOver.Breakfast.Main)
}

func TestApplyContextBMIDerivation(t *testing.T) {
	bmi, ok := UserDietContext{HeightCm: 170, WeightKg: 65}.BMI()
	require.True(t, ok)
	assert.InDelta(t, 22.5, bmi, 0.001)

	_, ok = UserDietContext{HeightCm: 0, WeightKg: 65}.BMI()
	assert.False(t, ok)
	_, ok = UserDietContext{HeightCm: 170, WeightKg: -1}.BMI()
	assert.False(t, ok)
}

func TestApplyContextEthnicityNoteOnly(t *testing.T) {
	plan := basePlan(t)
	out, notes := ApplyContext(plan, UserDietContext{Ethnicity: "Korean"})

	assert.Equal(t, plan.Lunch, out.Lunch)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "background")
}

func TestApplyContextCancerProfileFirstMatchWins(t *testing.T) {
	out, notes := ApplyContext(basePlan(t), UserDietContext{CancerType: "breast cancer"})

	profile := cancerProfiles[0]
	require.Equal(t, "breast", profile.Name)
	assert.Equal(t, profile.Mains[SlotLunch], out.Lunch.Main)
	assert.Equal(t, profile.Soups[SlotDinner], out.Dinner.Soup)
	assert.Equal(t, profile.RiceType, out.Breakfast.RiceType)
	assert.Contains(t, notes, "Menu adjusted to the breast cancer care profile.")
}

func TestApplyContextUnknownCancerTypeNotesOnly(t *testing.T) {
	plan := basePlan(t)
	out, notes := ApplyContext(plan, UserDietContext{CancerType: "rare sarcoma"})

	assert.Equal(t, plan.Lunch.Main, out.Lunch.Main)
	assert.Contains(t, notes, "No dedicated menu profile for this cancer type; the general plan applies.")
}

func TestApplyContextAdvancedStageOverridesProfile(t *testing.T) {
	ctx := UserDietContext{CancerType: "stomach cancer", CancerStage: "stage 3"}
	out, _ := ApplyContext(basePlan(t), ctx)

	// The advanced-stage rule runs after the profile rule and wins.
	assert.Equal(t, gentleMains[SlotLunch], out.Lunch.Main)
	assert.Equal(t, gentleSoups[SlotBreakfast], out.Breakfast.Soup)
}

func TestParseStageNumeral(t *testing.T) {
	assert.Equal(t, 3, parseStageNumeral("stage 3"))
	assert.Equal(t, 4, parseStageNumeral("Stage IV"))
	assert.Equal(t, 3, parseStageNumeral("IIIa"))
	assert.Equal(t, 12, parseStageNumeral("12"))
	assert.Equal(t, 0, parseStageNumeral(""))
	assert.Equal(t, 0, parseStageNumeral("unknown"))
}

func TestApplyContextActiveTreatmentSoftensSoupsOnly(t *testing.T) {
	plan := basePlan(t)
	ctx := UserDietContext{Stage: &TreatmentStage{Type: StageRadiation, Status: "active"}}
	out, _ := ApplyContext(plan, ctx)

	assert.Equal(t, softSoups[SlotLunch], out.Lunch.Soup)
	assert.Equal(t, plan.Lunch.Main, out.Lunch.Main)
}

func TestApplyContextSecondLineChemoReplacesSnack(t *testing.T) {
	ctx := UserDietContext{Stage: &TreatmentStage{Type: StageChemoSecond, Label: "2nd-line chemo", Order: 2, Status: "active"}}
	out, _ := ApplyContext(basePlan(t), ctx)

	assert.Equal(t, gentleSnack.Main, out.Snack.Main)
	assert.Contains(t, out.Snack.Summary, gentleSnack.Main)
}

func TestApplyContextMedicationTimingSwapsSoup(t *testing.T) {
	ctx := UserDietContext{Medications: []MedicationSchedule{
		{Name: "tamoxifen", Timing: SlotBreakfast},
		{Name: "warfarin", Timing: SlotDinner},
	}}
	plan := basePlan(t)
	out, notes := ApplyContext(plan, ctx)

	assert.Equal(t, lowIrritationSoup, out.Breakfast.Soup)
	assert.Equal(t, lowIrritationSoup, out.Dinner.Soup)
	assert.Equal(t, plan.Lunch.Soup, out.Lunch.Soup)
	assert.Len(t, notes, 1)
}

func TestApplyContextNotesAreDeduplicated(t *testing.T) {
	// Two medications at the same timing still produce a single note.
	ctx := UserDietContext{Medications: []MedicationSchedule{
		{Name: "a", Timing: SlotLunch},
		{Name: "b", Timing: SlotLunch},
	}}
	_, notes := ApplyContext(basePlan(t), ctx)

	assert.Len(t, notes, 1)
}
