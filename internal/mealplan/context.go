package mealplan

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// TreatmentStage describes the user's currently active treatment phase.
type TreatmentStage struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Order  int    `json:"order"`
	Status string `json:"status"`
}

// MedicationSchedule ties a medication to the meal it is taken with.
type MedicationSchedule struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Timing   Slot   `json:"timing"`
}

// UserDietContext carries the optional personal and medical attributes the
// context optimizer reads. Zero values mean "unknown" and make the
// corresponding rules skip.
type UserDietContext struct {
	Age         int                  `json:"age"`
	Sex         string               `json:"sex"`
	HeightCm    float64              `json:"height_cm"`
	WeightKg    float64              `json:"weight_kg"`
	Ethnicity   string               `json:"ethnicity"`
	CancerType  string               `json:"cancer_type"`
	CancerStage string               `json:"cancer_stage"`
	Stage       *TreatmentStage      `json:"stage,omitempty"`
	Medications []MedicationSchedule `json:"medications,omitempty"`
}

// BMI derives weight/(height/100)^2 rounded to one decimal. The second
// return is false when height or weight is missing or non-positive.
func (c UserDietContext) BMI() (float64, bool) {
	if c.HeightCm <= 0 || c.WeightKg <= 0 {
		return 0, false
	}
	m := c.HeightCm / 100
	return math.Round(c.WeightKg/(m*m)*10) / 10, true
}

// contextRule is one entry of the ordered rule table. Rules run sequentially
// against the cloned plan; a rule whose transform runs contributes its note.
// Later rules may overwrite fields touched by earlier ones.
type contextRule struct {
	applies   func(UserDietContext) bool
	transform func(*DayPlan, UserDietContext) string
}

var contextRules = []contextRule{
	{ // 1: seniors get softer mains and soups across all main meals
		applies: func(c UserDietContext) bool { return c.Age >= 65 },
		transform: func(p *DayPlan, c UserDietContext) string {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Main = softMains[slot]
				m.Soup = softSoups[slot]
				m.RecipeName, m.RecipeSteps = buildRecipe(m.Main)
				m.refreshSummary(slot)
			}
			return "Softer, easy-to-chew dishes selected for age 65 and over."
		},
	},
	{ // 2: BMI branches, mutually exclusive
		applies: func(c UserDietContext) bool {
			bmi, ok := c.BMI()
			return ok && (bmi < 18.5 || bmi >= 25)
		},
		transform: func(p *DayPlan, c UserDietContext) string {
			bmi, _ := c.BMI()
			if bmi < 18.5 {
				for _, slot := range MainSlots {
					m := p.Meal(slot)
					m.Main = denseMains[slot]
					m.RecipeName, m.RecipeSteps = buildRecipe(m.Main)
					m.refreshSummary(slot)
				}
				proteinSnack.apply(&p.Snack)
				return "Energy-dense, protein-forward dishes selected for a low BMI."
			}
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.RiceType = highFiberRice
				m.refreshSummary(slot)
			}
			lowGlycemicSnack.apply(&p.Snack)
			return "Higher-fiber grains and a lower-glycemic snack selected for an elevated BMI."
		},
	},
	{ // 3: sex-based side diversification
		applies: func(c UserDietContext) bool {
			s := strings.ToLower(c.Sex)
			return s == "female" || s == "male"
		},
		transform: func(p *DayPlan, c UserDietContext) string {
			if strings.ToLower(c.Sex) == "female" {
				replaceSide(&p.Lunch, 0, "sesame greens with tofu")
				p.Lunch.refreshSummary(SlotLunch)
				return "Added a calcium- and iron-minded side to lunch."
			}
			replaceSide(&p.Dinner, 0, "tomato and onion salad")
			p.Dinner.refreshSummary(SlotDinner)
			return "Added a vegetable-forward side to dinner."
		},
	},
	{ // 4: ethnicity/background note only, no field mutation
		applies: func(c UserDietContext) bool { return strings.TrimSpace(c.Ethnicity) != "" },
		transform: func(p *DayPlan, c UserDietContext) string {
			return "Plan kept flexible so familiar foods from your background can substitute freely."
		},
	},
	{ // 5: cancer-type profile, first match wins
		applies: func(c UserDietContext) bool { return strings.TrimSpace(c.CancerType) != "" },
		transform: func(p *DayPlan, c UserDietContext) string {
			for _, profile := range cancerProfiles {
				if !containsAny(c.CancerType, profile.Keywords...) {
					continue
				}
				for _, slot := range MainSlots {
					m := p.Meal(slot)
					m.RiceType = profile.RiceType
					m.Main = profile.Mains[slot]
					m.Soup = profile.Soups[slot]
					m.Sides = append([]string(nil), profile.Sides...)
					m.RecipeName, m.RecipeSteps = buildRecipe(m.Main)
					m.refreshSummary(slot)
				}
				if profile.SnackOverride != nil {
					profile.SnackOverride.apply(&p.Snack)
				}
				return fmt.Sprintf("Menu adjusted to the %s cancer care profile.", profile.Name)
			}
			return "No dedicated menu profile for this cancer type; the general plan applies."
		},
	},
	{ // 6: advanced stage overrides any profile choice
		applies: func(c UserDietContext) bool { return parseStageNumeral(c.CancerStage) >= 3 },
		transform: func(p *DayPlan, c UserDietContext) string {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Main = gentleMains[slot]
				m.Soup = gentleSoups[slot]
				m.RecipeName, m.RecipeSteps = buildRecipe(m.Main)
				m.refreshSummary(slot)
			}
			return "Gentlest preparations selected for an advanced cancer stage."
		},
	},
	{ // 7: active intensive treatment softens soups only
		applies: func(c UserDietContext) bool {
			return c.Stage != nil && c.Stage.Status == "active" &&
				(c.Stage.Type == StageChemo || c.Stage.Type == StageChemoSecond || c.Stage.Type == StageRadiation)
		},
		transform: func(p *DayPlan, c UserDietContext) string {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Soup = softSoups[slot]
				m.refreshSummary(slot)
			}
			return "Soups softened while treatment is active."
		},
	},
	{ // 8: second-line or later chemo replaces the snack
		applies: func(c UserDietContext) bool {
			return c.Stage != nil && c.Stage.Order >= 2 &&
				(containsAny(c.Stage.Label, "chemo") || containsAny(c.Stage.Type, "chemo"))
		},
		transform: func(p *DayPlan, c UserDietContext) string {
			gentleSnack.apply(&p.Snack)
			return "Snack switched to the gentlest option for later-line chemotherapy."
		},
	},
	{ // 9: per-medication-timing low-irritation soup swap
		applies: func(c UserDietContext) bool { return len(c.Medications) > 0 },
		transform: func(p *DayPlan, c UserDietContext) string {
			swapped := false
			for _, med := range c.Medications {
				switch med.Timing {
				case SlotBreakfast, SlotLunch, SlotDinner:
					m := p.Meal(med.Timing)
					m.Soup = lowIrritationSoup
					m.refreshSummary(med.Timing)
					swapped = true
				}
			}
			if !swapped {
				return ""
			}
			return "Low-irritation soup paired with meals taken alongside medication."
		},
	},
}

// ApplyContext runs the ordered personal/medical context rules against a
// clone of the plan and returns the adjusted plan with de-duplicated notes.
func ApplyContext(plan DayPlan, ctx UserDietContext) (DayPlan, []string) {
	out := plan.Clone()
	var notes []string
	for _, rule := range contextRules {
		if !rule.applies(ctx) {
			continue
		}
		if note := rule.transform(&out, ctx); note != "" {
			notes = appendNote(notes, note)
		}
	}
	return out, notes
}

// replaceSide overwrites the side at idx, appending instead when the meal
// has no side at that position (including meals with no sides at all).
func replaceSide(m *Meal, idx int, side string) {
	if idx < 0 || idx >= len(m.Sides) {
		m.Sides = append(m.Sides, side)
		return
	}
	m.Sides[idx] = side
}

// parseStageNumeral extracts a stage number from free text such as "stage 3",
// "3기" or "Stage IIIa". Unparseable text yields 0.
func parseStageNumeral(s string) int {
	for i, r := range s {
		if unicode.IsDigit(r) {
			n := int(r - '0')
			for _, r2 := range s[i+1:] {
				if !unicode.IsDigit(r2) {
					break
				}
				n = n*10 + int(r2-'0')
			}
			return n
		}
	}
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "IV"):
		return 4
	case strings.Contains(upper, "III"):
		return 3
	case strings.Contains(upper, "II"):
		return 2
	case strings.Contains(upper, "I"):
		return 1
	}
	return 0
}
