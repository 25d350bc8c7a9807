package mealplan

import (
	"fmt"
	"strings"
)

// LogItem is one tracked food entry in a day log. Eaten and NotEaten record
// an explicit check either way; an item with neither flag was left untracked.
type LogItem struct {
	Name     string `json:"name"`
	Eaten    bool   `json:"eaten"`
	NotEaten bool   `json:"not_eaten"`
	Servings int    `json:"servings"`
}

// DayLog is the read-only record of what a user logged for one day.
type DayLog struct {
	Date      string    `json:"date"`
	Breakfast []LogItem `json:"breakfast"`
	Lunch     []LogItem `json:"lunch"`
	Dinner    []LogItem `json:"dinner"`
	Snack     []LogItem `json:"snack"`
}

func (l DayLog) slots() [][]LogItem {
	return [][]LogItem{l.Breakfast, l.Lunch, l.Dinner, l.Snack}
}

// Condition carries the stage and body classification used to scale
// correction strength. A BMI of zero or below means unknown.
type Condition struct {
	StageType string  `json:"stage_type"`
	BMI       float64 `json:"bmi"`
}

var (
	flourKeywords = []string{"bread", "noodle", "pasta", "ramen", "cake", "cookie", "pastry", "pizza", "bun", "cracker", "flour", "donut"}
	sugarKeywords = []string{"sugar", "soda", "candy", "chocolate", "dessert", "syrup", "sweet", "juice", "ice cream", "honey"}
	heavyKeywords = []string{"fried", "alcohol", "beer", "soju", "wine", "late-night", "late night", "chips", "burger", "bacon"}
	proteinKeywords = []string{
		"chicken", "fish", "tofu", "egg", "beef", "pork", "bean", "milk",
		"yogurt", "cheese", "shrimp", "salmon", "mackerel", "cod",
	}
)

type intakeSignals struct {
	totalItems   int
	checkedItems int
	eatenAny     bool
	skippedMeals int
	flour        int
	sugar        int
	heavy        int
	protein      int
}

func (s intakeSignals) flourSugar() int { return s.flour + s.sugar }

func (s intakeSignals) reliability() float64 {
	if s.totalItems == 0 {
		return 0
	}
	return float64(s.checkedItems) / float64(s.totalItems)
}

func scanDayLog(log DayLog) intakeSignals {
	var sig intakeSignals
	for _, items := range log.slots() {
		eatenInMeal := false
		for _, item := range items {
			sig.totalItems++
			if item.Eaten || item.NotEaten {
				sig.checkedItems++
			}
			if !item.Eaten {
				continue
			}
			eatenInMeal = true
			sig.eatenAny = true

			weight := item.Servings
			if weight < 1 {
				weight = 1
			}
			name := strings.ToLower(item.Name)
			if containsAny(name, flourKeywords...) {
				sig.flour += weight
			}
			if containsAny(name, sugarKeywords...) {
				sig.sugar += weight
			}
			if containsAny(name, heavyKeywords...) {
				sig.heavy += weight
			}
			if containsAny(name, proteinKeywords...) {
				sig.protein += weight
			}
		}
		if !eatenInMeal {
			sig.skippedMeals++
		}
	}
	return sig
}

func stageRiskWeight(stageType string) float64 {
	switch stageType {
	case StageChemo, StageChemoSecond, StageRadiation:
		return 1.15
	case StageSurgery:
		return 1.10
	case StageHormone, StageMedication, StageTargeted, StageImmunotherapy:
		return 1.05
	default:
		return 1.0
	}
}

func bmiWeight(bmi float64) float64 {
	switch {
	case bmi <= 0:
		return 1.0
	case bmi >= 30:
		return 1.3
	case bmi >= 25:
		return 1.18
	case bmi < 18.5:
		return 0.85
	default:
		return 1.0
	}
}

// bmiWeightInverse mirrors bmiWeight for the undereat branch: low body mass
// amplifies the recovery nudge, high body mass dampens it.
func bmiWeightInverse(bmi float64) float64 {
	switch {
	case bmi <= 0:
		return 1.0
	case bmi < 18.5:
		return 1.3
	case bmi >= 30:
		return 0.85
	case bmi >= 25:
		return 0.9
	default:
		return 1.0
	}
}

func reliabilityWeight(reliability float64) float64 {
	return clampFloat(0.65+reliability*0.45, 0.65, 1.1)
}

// ApplyIntakeCorrection inspects yesterday's log and nudges today's macros.
// At most one of the overeat/undereat branches fires; with no usable log the
// plan passes through unchanged with zero notes.
func ApplyIntakeCorrection(dateKey string, plan DayPlan, logsByDate map[string]DayLog, cond Condition) (DayPlan, []string) {
	out := plan.Clone()

	yesterday := shiftDateKey(dateKey, -1)
	if yesterday == "" {
		return out, nil
	}
	log, ok := logsByDate[yesterday]
	if !ok {
		return out, nil
	}
	sig := scanDayLog(log)
	if !sig.eatenAny {
		return out, nil
	}

	reliability := sig.reliability()
	threshold := 4
	if reliability >= 0.7 {
		threshold = 3
	}

	var notes []string
	switch {
	case sig.flourSugar()+sig.heavy >= threshold:
		strength := clampFloat(stageRiskWeight(cond.StageType)*bmiWeight(cond.BMI)*reliabilityWeight(reliability), 0.65, 1.5)
		for _, slot := range MainSlots {
			m := out.Meal(slot)
			m.Nutrient = m.Nutrient.Rebalance(-7*strength, 5*strength)
			m.RiceType = "small bowl of " + m.RiceType
			m.refreshSummary(slot)
		}
		proteinSnack.apply(&out.Snack)
		notes = appendNote(notes, "Yesterday ran heavy on flour, sugar or rich foods; today trims carbohydrate and adds protein.")
		notes = appendNote(notes, fmt.Sprintf("Correction strength %.2f applied based on stage, BMI and tracking reliability.", strength))

	case sig.skippedMeals >= 2 || sig.protein == 0:
		strength := clampFloat(stageRiskWeight(cond.StageType)*bmiWeightInverse(cond.BMI)*reliabilityWeight(reliability), 0.7, 1.6)
		for _, slot := range MainSlots {
			m := out.Meal(slot)
			m.Nutrient = m.Nutrient.Rebalance(6*strength, 5*strength)
			m.refreshSummary(slot)
		}
		recoverySnack.apply(&out.Snack)
		notes = appendNote(notes, "Yesterday's intake looked low; today adds gentle energy and protein to recover.")
		notes = appendNote(notes, fmt.Sprintf("Recovery strength %.2f applied based on stage, BMI and tracking reliability.", strength))
	}

	return out, notes
}
