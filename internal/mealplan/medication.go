package mealplan

import "strings"

// ApplyMedications applies keyword-matched medication safety adjustments.
// Medication names are normalized (lowercased, whitespace stripped) and
// checked by substring against three drug groups. Unmatched names are
// ignored; this stage never fails.
func ApplyMedications(plan DayPlan, medicationNames []string) (DayPlan, []string) {
	out := plan.Clone()
	var notes []string

	var hormone, steroid, anticoagulant bool
	for _, name := range medicationNames {
		n := normalizeName(name)
		if n == "" {
			continue
		}
		hormone = hormone || matchesAnyDrug(n, hormoneTargetedDrugs)
		steroid = steroid || matchesAnyDrug(n, steroidDrugs)
		anticoagulant = anticoagulant || matchesAnyDrug(n, anticoagulantDrugs)
	}

	if hormone {
		antioxidantSnack.apply(&out.Snack)
		notes = appendNote(notes, "Snack switched to a low-sugar, antioxidant-rich option for hormone or targeted therapy.")
	}

	if steroid {
		for _, slot := range MainSlots {
			m := out.Meal(slot)
			m.Soup = lowSodiumSoupTag + m.Soup
			replaceSide(m, len(m.Sides)-1, lowSodiumSide)
			m.refreshSummary(slot)
		}
		notes = appendNote(notes, "Soups and one side per meal reduced in sodium while taking steroids.")
	}

	if anticoagulant {
		swapped := false
		for _, slot := range MainSlots {
			m := out.Meal(slot)
			for i, side := range m.Sides {
				if containsAny(side, vitaminKIngredients...) {
					m.Sides[i] = neutralSide
					swapped = true
				}
			}
			m.refreshSummary(slot)
		}
		if swapped {
			notes = appendNote(notes, "Vitamin K-heavy sides swapped out to keep anticoagulant dosing stable.")
		}
	}

	return out, notes
}

func matchesAnyDrug(normalized string, drugs []string) bool {
	for _, d := range drugs {
		if strings.Contains(normalized, d) {
			return true
		}
	}
	return false
}
