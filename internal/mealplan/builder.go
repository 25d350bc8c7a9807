package mealplan

import "time"

// Treatment stage types understood by the engine.
const (
	StageDiagnosis     = "diagnosis"
	StageChemo         = "chemo"
	StageChemoSecond   = "chemo-2nd"
	StageRadiation     = "radiation"
	StageTargeted      = "targeted"
	StageImmunotherapy = "immunotherapy"
	StageHormone       = "hormone"
	StageSurgery       = "surgery"
	StageMedication    = "medication"
	StageOther         = "other"
)

type stageGroup int

const (
	groupDefault stageGroup = iota
	groupLowerCarb
	groupSoft
)

func groupForStage(stageType string) stageGroup {
	switch stageType {
	case StageHormone, StageTargeted, StageImmunotherapy, StageMedication:
		return groupLowerCarb
	case StageChemo, StageChemoSecond, StageRadiation, StageSurgery:
		return groupSoft
	default:
		return groupDefault
	}
}

// BuildPlan deterministically synthesizes the base plan for a date and
// treatment stage. Identical inputs always yield a deep-equal plan: all
// variation comes from integer seed arithmetic over the date, never from a
// random source. When preferences are supplied the result is piped once
// through ApplyPreferences before returning.
func BuildPlan(dateKey, stageType string, historyScore int, prefs []PreferenceType) DayPlan {
	year, month, day := parseDateKey(dateKey)
	seed := day + int(month)*37 + year

	rice := riceTypes[seed%len(riceTypes)]
	caution := flourCautionStrict
	if historyScore < 60 {
		caution = flourCautionGentle
	}

	group := groupForStage(stageType)

	plan := DayPlan{Date: dateKey}
	for i, slot := range Slots {
		slotSeed := seed + i + 1
		meal := plan.Meal(slot)
		meal.Main = pick(mainPools[slot], slotSeed)
		meal.Soup = pick(soupPools[slot], slotSeed)

		if slot == SlotSnack {
			meal.Sides = []string{pick(snackSidePool, slotSeed)}
			meal.Nutrient = snackBaseline
		} else {
			meal.RiceType = rice
			meal.FlourCaution = caution
			meal.Sides = []string{
				pick(seasonalPool(month), slotSeed),
				pick(sidePool, slotSeed+3),
				pick(sidePool, slotSeed+5),
			}
			meal.Nutrient = baselineByGroup[group][slot]
		}

		meal.RecipeName, meal.RecipeSteps = buildRecipe(meal.Main)
		meal.refreshSummary(slot)
	}

	if len(prefs) == 0 {
		return plan
	}
	adjusted, _ := ApplyPreferences(plan, prefs)
	return adjusted
}

func pick(pool []string, seed int) string {
	return pool[seed%len(pool)]
}

// seasonalPool merges the month's seasonal bucket with the generic side pool
// so every month offers its in-season ingredients first.
func seasonalPool(month time.Month) []string {
	bucket := seasonalSides[int(month)]
	out := make([]string, 0, len(bucket)+len(sidePool))
	out = append(out, bucket...)
	out = append(out, sidePool...)
	return out
}

// parseDateKey splits a YYYY-MM-DD key. Malformed keys degrade to a fixed
// epoch date so the builder still returns a structurally valid plan.
func parseDateKey(dateKey string) (int, time.Month, int) {
	t, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return 2000, time.January, 1
	}
	return t.Year(), t.Month(), t.Day()
}

// shiftDateKey returns the key days away from dateKey, or "" when the key is
// malformed.
func shiftDateKey(dateKey string, days int) string {
	t, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, days).Format("2006-01-02")
}
