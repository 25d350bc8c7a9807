package mealplan

import "strings"

// Slot identifies one of the four meal slots in a daily plan.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotSnack     Slot = "snack"
)

// Slots lists every slot in plan order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// MainSlots lists the three non-snack slots.
var MainSlots = []Slot{SlotBreakfast, SlotLunch, SlotDinner}

// Meal is one suggested meal. Summary is always derived from the fields it
// quotes; callers inside this package must call refreshSummary after touching
// RiceType, Main, Soup or Sides.
type Meal struct {
	RiceType     string   `json:"rice_type,omitempty"`
	Main         string   `json:"main"`
	Soup         string   `json:"soup"`
	Sides        []string `json:"sides"`
	Summary      string   `json:"summary"`
	FlourCaution string   `json:"flour_caution,omitempty"`
	Nutrient     Nutrient `json:"nutrient"`
	RecipeName   string   `json:"recipe_name"`
	RecipeSteps  []string `json:"recipe_steps"`
}

func (m Meal) clone() Meal {
	out := m
	out.Sides = append([]string(nil), m.Sides...)
	out.RecipeSteps = append([]string(nil), m.RecipeSteps...)
	return out
}

// refreshSummary re-derives Summary. Non-snack meals summarize rice, main and
// soup; the snack summarizes its main, first side and drink.
func (m *Meal) refreshSummary(slot Slot) {
	var parts []string
	if slot == SlotSnack {
		parts = []string{m.Main}
		if len(m.Sides) > 0 {
			parts = append(parts, m.Sides[0])
		}
		parts = append(parts, m.Soup)
	} else {
		parts = []string{m.RiceType, m.Main, m.Soup}
	}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	m.Summary = strings.Join(kept, ", ")
}

// DayPlan is one day's full suggestion, keyed by a YYYY-MM-DD date.
type DayPlan struct {
	Date      string `json:"date"`
	Breakfast Meal   `json:"breakfast"`
	Lunch     Meal   `json:"lunch"`
	Dinner    Meal   `json:"dinner"`
	Snack     Meal   `json:"snack"`
}

// Clone returns a deep copy. Every pipeline stage clones before modifying so
// callers can safely memoize stage inputs and outputs.
func (p DayPlan) Clone() DayPlan {
	out := p
	out.Breakfast = p.Breakfast.clone()
	out.Lunch = p.Lunch.clone()
	out.Dinner = p.Dinner.clone()
	out.Snack = p.Snack.clone()
	return out
}

// Meal returns a pointer to the meal for the given slot.
func (p *DayPlan) Meal(slot Slot) *Meal {
	switch slot {
	case SlotBreakfast:
		return &p.Breakfast
	case SlotLunch:
		return &p.Lunch
	case SlotDinner:
		return &p.Dinner
	default:
		return &p.Snack
	}
}

// appendNote appends note to notes unless an equal entry is already present.
func appendNote(notes []string, note string) []string {
	for _, n := range notes {
		if n == note {
			return notes
		}
	}
	return append(notes, note)
}
