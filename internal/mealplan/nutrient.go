package mealplan

import "math"

// Nutrient is a macro-ratio expressed as integer percentages.
// Carb + Protein + Fat always sums to 100.
type Nutrient struct {
	Carb    int `json:"carb"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
}

// Rebalance shifts the carb and protein shares by the given deltas and
// re-derives fat so the triple still sums to 100. Carb and protein are
// clamped to [20,60]; fat is not clamped directly but is pulled back toward
// [20,35] by trading against protein and carb. The fat>35 correction clamps
// carb after adding the excess, so fat can stay above 35 when carb is already
// pinned at 60; downstream behavior depends on that exact order.
func (n Nutrient) Rebalance(carbDelta, proteinDelta float64) Nutrient {
	carb := clampInt(int(math.Round(float64(n.Carb)+carbDelta)), 20, 60)
	protein := clampInt(int(math.Round(float64(n.Protein)+proteinDelta)), 20, 60)
	fat := 100 - carb - protein

	if fat < 20 {
		need := 20 - fat
		give := need
		if room := protein - 20; room < give {
			give = room
		}
		protein -= give
		need -= give
		if need > 0 {
			if room := carb - 20; room < need {
				need = room
			}
			carb -= need
		}
		fat = 100 - carb - protein
	}

	if fat > 35 {
		carb = clampInt(carb+(fat-35), 20, 60)
		fat = 100 - carb - protein
	}

	return Nutrient{Carb: carb, Protein: protein, Fat: fat}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
