package mealplan

import (
	"fmt"
	"strings"
)

const (
	similarityThreshold = 0.72
	maxRegenAttempts    = 5
	minWindowSize       = 1
	maxWindowSize       = 14
)

// slotField pairs one rotatable meal field with its curated value pool.
type slotField struct {
	pool []string
	get  func(*Meal) string
	set  func(*Meal, string)
}

func rotatableFields(slot Slot) []slotField {
	getMain := func(m *Meal) string { return m.Main }
	setMain := func(m *Meal, v string) { m.Main = v }
	getSoup := func(m *Meal) string { return m.Soup }
	setSoup := func(m *Meal, v string) { m.Soup = v }

	if slot == SlotSnack {
		return []slotField{
			{pool: mainPools[SlotSnack], get: getMain, set: setMain},
			{pool: soupPools[SlotSnack], get: getSoup, set: setSoup},
			{
				pool: snackSidePool,
				get: func(m *Meal) string {
					if len(m.Sides) == 0 {
						return ""
					}
					return m.Sides[0]
				},
				set: func(m *Meal, v string) { replaceSide(m, 0, v) },
			},
		}
	}
	return []slotField{
		{pool: mainPools[slot], get: getMain, set: setMain},
		{pool: soupPools[slot], get: getSoup, set: setSoup},
	}
}

// rotate scans pool cyclically starting at the current value's index plus
// offset and returns the first candidate not present in used. A current value
// absent from the window is kept as-is at offset zero; when every pool value
// is used the current value is the fallback.
func rotate(pool []string, current string, used map[string]bool, offset int) string {
	if len(pool) == 0 {
		return current
	}
	start := indexOf(pool, current) + offset
	for i := 0; i < len(pool); i++ {
		candidate := pool[(start+i)%len(pool)]
		if !used[candidate] {
			return candidate
		}
	}
	return current
}

// ApplyAntiRepetition enforces dish variety against the most recent plans.
// The window is ordered most-recent-first and clamped to [1,14] entries. Each
// slot is handled independently: pool rotation first, then a Jaccard
// similarity gate with up to five offset regeneration attempts.
func ApplyAntiRepetition(plan DayPlan, window []DayPlan, windowSize int) (DayPlan, []string) {
	out := plan.Clone()
	if len(window) == 0 {
		return out, nil
	}
	windowSize = clampInt(windowSize, minWindowSize, maxWindowSize)
	if len(window) > windowSize {
		window = window[:windowSize]
	}

	var notes []string
	for _, slot := range Slots {
		meal := out.Meal(slot)
		fields := rotatableFields(slot)

		used := make([]map[string]bool, len(fields))
		for i, f := range fields {
			used[i] = make(map[string]bool, len(window))
			for wi := range window {
				past := window[wi]
				used[i][f.get(past.Meal(slot))] = true
			}
		}

		rotated := false
		for i, f := range fields {
			cur := f.get(meal)
			next := rotate(f.pool, cur, used[i], 0)
			if next != cur {
				f.set(meal, next)
				rotated = true
			}
		}
		if rotated {
			meal.RecipeName, meal.RecipeSteps = buildRecipe(meal.Main)
			meal.refreshSummary(slot)
			notes = appendNote(notes, fmt.Sprintf("%s rotated to avoid repeating recent dishes.", slot))
		}

		if maxWindowSimilarity(*meal, window, slot) < similarityThreshold {
			continue
		}

		resolved := false
		for attempt := 1; attempt <= maxRegenAttempts; attempt++ {
			for i, f := range fields {
				f.set(meal, rotate(f.pool, f.get(meal), used[i], attempt))
			}
			meal.RecipeName, meal.RecipeSteps = buildRecipe(meal.Main)
			meal.refreshSummary(slot)
			if maxWindowSimilarity(*meal, window, slot) < similarityThreshold {
				resolved = true
				break
			}
		}
		if resolved {
			notes = appendNote(notes, fmt.Sprintf("%s regenerated to reduce similarity with recent meals.", slot))
		} else {
			notes = appendNote(notes, fmt.Sprintf("%s variety options exhausted; closest available alternative kept.", slot))
		}
	}
	return out, notes
}

// maxWindowSimilarity returns the highest Jaccard similarity between the
// meal's token set and the same slot of each window plan.
func maxWindowSimilarity(meal Meal, window []DayPlan, slot Slot) float64 {
	tokens := mealTokens(meal)
	best := 0.0
	for wi := range window {
		past := window[wi]
		if sim := jaccard(tokens, mealTokens(*past.Meal(slot))); sim > best {
			best = sim
		}
	}
	return best
}

// tokenCategories maps dish-name keywords to semantic tokens: protein
// category, carb category, cooking method and dish type.
var tokenCategories = []struct {
	token    string
	keywords []string
}{
	{"protein:chicken", []string{"chicken", "poultry"}},
	{"protein:fish", []string{"fish", "mackerel", "salmon", "cod", "pollock", "tuna", "shrimp", "squid", "clam"}},
	{"protein:tofu-bean", []string{"tofu", "bean", "lentil", "soybean"}},
	{"protein:egg", []string{"egg", "omelet", "custard"}},
	{"protein:dairy-soy", []string{"yogurt", "milk", "cheese", "soy milk"}},
	{"carb:grain", []string{"rice", "grain", "barley", "oat", "noodle", "bread", "porridge"}},
	{"carb:fruit-starch", []string{"fruit", "banana", "apple", "berr", "potato", "pumpkin", "chestnut", "persimmon"}},
	{"method:grill", []string{"grill"}},
	{"method:steam", []string{"steam"}},
	{"method:stir-fry", []string{"stir-fr"}},
	{"method:season", []string{"season"}},
	{"dish:soup", []string{"soup", "stew", "broth"}},
	{"dish:salad", []string{"salad"}},
}

// mealTokens extracts the semantic token set for a meal from its main dish
// and soup names.
func mealTokens(m Meal) map[string]bool {
	tokens := make(map[string]bool)
	for _, name := range []string{m.Main, m.Soup} {
		lower := strings.ToLower(name)
		for _, cat := range tokenCategories {
			for _, k := range cat.keywords {
				if strings.Contains(lower, k) {
					tokens[cat.token] = true
					break
				}
			}
		}
	}
	return tokens
}

// jaccard computes the intersection-over-union of two token sets; two empty
// sets score zero.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if b[t] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
