package mealplan

// PreferenceType is one of the user-toggleable taste and goal directives.
type PreferenceType string

// The constant declaration order below is the evaluation order of
// ApplyPreferences. When two active preferences write the same field, the one
// declared later wins; callers rely on that contract.
const (
	PrefSpicy       PreferenceType = "spicy"
	PrefSweet       PreferenceType = "sweet"
	PrefLight       PreferenceType = "light"
	PrefWarmFood    PreferenceType = "warm-food"
	PrefColdFood    PreferenceType = "cold-food"
	PrefFishForward PreferenceType = "fish-forward"
	PrefMeatForward PreferenceType = "meat-forward"
	PrefVegetarian  PreferenceType = "vegetarian"
	PrefSoftTexture PreferenceType = "soft-texture"
	PrefTraditional PreferenceType = "traditional"
	PrefQuickPrep   PreferenceType = "quick-prep"
	PrefBudget      PreferenceType = "budget"
	PrefHighFiber   PreferenceType = "high-fiber"
	PrefLowSugar    PreferenceType = "low-sugar"
	PrefLowFat      PreferenceType = "low-fat"
	PrefLowSalt     PreferenceType = "low-salt"
	PrefHighProtein PreferenceType = "high-protein"
	PrefEasyDigest  PreferenceType = "easy-digest"
	PrefWeightGain  PreferenceType = "weight-gain"
	PrefWeightLoss  PreferenceType = "weight-loss"
)

// preferenceRule overwrites specific fields of specific meals when its toggle
// is active and records one explanatory note.
type preferenceRule struct {
	pref  PreferenceType
	note  string
	apply func(*DayPlan)
}

// preferenceRules holds exactly one rule per PreferenceType, in declaration
// order. ApplyPreferences walks this slice top to bottom every invocation.
var preferenceRules = []preferenceRule{
	{
		pref: PrefSpicy,
		note: "A mildly spicy lunch option was kept in the plan.",
		apply: func(p *DayPlan) {
			p.Lunch.Soup = "mild kimchi soup with tofu"
			p.Lunch.refreshSummary(SlotLunch)
		},
	},
	{
		pref: PrefSweet,
		note: "Natural sweetness added through fruit instead of sugar.",
		apply: func(p *DayPlan) {
			p.Snack.Main = "baked apple with cinnamon"
			p.Snack.RecipeName, p.Snack.RecipeSteps = buildRecipe(p.Snack.Main)
			p.Snack.refreshSummary(SlotSnack)
		},
	},
	{
		pref: PrefLight,
		note: "Lighter preparations chosen for dinner.",
		apply: func(p *DayPlan) {
			p.Dinner.Main = "steamed chicken breast salad"
			p.Dinner.Soup = "mushroom clear soup"
			p.Dinner.RecipeName, p.Dinner.RecipeSteps = buildRecipe(p.Dinner.Main)
			p.Dinner.refreshSummary(SlotDinner)
		},
	},
	{
		pref: PrefWarmFood,
		note: "Warm dishes and a warm drink favored throughout the day.",
		apply: func(p *DayPlan) {
			p.Snack.Soup = "warm barley tea"
			p.Snack.refreshSummary(SlotSnack)
		},
	},
	{
		pref: PrefColdFood,
		note: "A chilled side and cool drink added for comfort.",
		apply: func(p *DayPlan) {
			replaceSide(&p.Dinner, len(p.Dinner.Sides)-1, "chilled cucumber strips")
			p.Dinner.refreshSummary(SlotDinner)
			p.Snack.Soup = "cool plain water"
			p.Snack.refreshSummary(SlotSnack)
		},
	},
	{
		pref: PrefFishForward,
		note: "Fish selected as the dinner main.",
		apply: func(p *DayPlan) {
			p.Dinner.Main = "grilled white fish"
			p.Dinner.RecipeName, p.Dinner.RecipeSteps = buildRecipe(p.Dinner.Main)
			p.Dinner.refreshSummary(SlotDinner)
		},
	},
	{
		pref: PrefMeatForward,
		note: "Lean meat selected as the lunch main.",
		apply: func(p *DayPlan) {
			p.Lunch.Main = "bulgogi-style lean beef"
			p.Lunch.RecipeName, p.Lunch.RecipeSteps = buildRecipe(p.Lunch.Main)
			p.Lunch.refreshSummary(SlotLunch)
		},
	},
	{
		pref: PrefVegetarian,
		note: "Mains switched to tofu and vegetable dishes.",
		apply: func(p *DayPlan) {
			p.Breakfast.Main = "soft tofu with soy drizzle"
			p.Lunch.Main = "tofu and mushroom stir-fry"
			p.Dinner.Main = "braised tofu with leeks"
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.RecipeName, m.RecipeSteps = buildRecipe(m.Main)
				m.refreshSummary(slot)
			}
		},
	},
	{
		pref: PrefSoftTexture,
		note: "Soft-textured dishes chosen across the day.",
		apply: func(p *DayPlan) {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Main = softMains[slot]
				m.Soup = softSoups[slot]
				m.RecipeName, m.RecipeSteps = buildRecipe(m.Main)
				m.refreshSummary(slot)
			}
		},
	},
	{
		pref: PrefTraditional,
		note: "A traditional rice-and-soup table kept for lunch.",
		apply: func(p *DayPlan) {
			p.Lunch.RiceType = "steamed white rice"
			p.Lunch.Soup = "zucchini soybean-paste soup"
			p.Lunch.refreshSummary(SlotLunch)
		},
	},
	{
		pref: PrefQuickPrep,
		note: "Breakfast simplified to a quick preparation.",
		apply: func(p *DayPlan) {
			p.Breakfast.Main = "rolled omelet with vegetables"
			p.Breakfast.Sides = []string{"cherry tomatoes", "soft tofu cubes with sesame"}
			p.Breakfast.RecipeName, p.Breakfast.RecipeSteps = buildRecipe(p.Breakfast.Main)
			p.Breakfast.refreshSummary(SlotBreakfast)
		},
	},
	{
		pref: PrefBudget,
		note: "Affordable staple ingredients favored.",
		apply: func(p *DayPlan) {
			p.Dinner.Main = "egg and chive stir-fry"
			p.Dinner.RecipeName, p.Dinner.RecipeSteps = buildRecipe(p.Dinner.Main)
			p.Dinner.refreshSummary(SlotDinner)
		},
	},
	{
		pref: PrefHighFiber,
		note: "Whole grains and fiber-rich sides emphasized.",
		apply: func(p *DayPlan) {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.RiceType = highFiberRice
				m.refreshSummary(slot)
			}
		},
	},
	{
		pref: PrefLowSugar,
		note: "Snack switched to a no-added-sugar option.",
		apply: func(p *DayPlan) {
			lowGlycemicSnack.apply(&p.Snack)
		},
	},
	{
		pref: PrefLowFat,
		note: "Grilled and steamed mains chosen to keep fat low.",
		apply: func(p *DayPlan) {
			p.Lunch.Main = "grilled chicken breast"
			p.Dinner.Main = "steamed cod with ginger"
			p.Lunch.RecipeName, p.Lunch.RecipeSteps = buildRecipe(p.Lunch.Main)
			p.Dinner.RecipeName, p.Dinner.RecipeSteps = buildRecipe(p.Dinner.Main)
			p.Lunch.refreshSummary(SlotLunch)
			p.Dinner.refreshSummary(SlotDinner)
		},
	},
	{
		pref: PrefLowSalt,
		note: "Soups and sides adjusted toward low sodium.",
		apply: func(p *DayPlan) {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Soup = lowSodiumSoupTag + m.Soup
				replaceSide(m, len(m.Sides)-1, lowSodiumSide)
				m.refreshSummary(slot)
			}
		},
	},
	{
		pref: PrefHighProtein,
		note: "Protein share raised in every main meal.",
		apply: func(p *DayPlan) {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Nutrient = m.Nutrient.Rebalance(-4, 6)
			}
			proteinSnack.apply(&p.Snack)
		},
	},
	{
		pref: PrefEasyDigest,
		note: "Easily digested preparations chosen across the day.",
		apply: func(p *DayPlan) {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Main = gentleMains[slot]
				m.Soup = gentleSoups[slot]
				m.RecipeName, m.RecipeSteps = buildRecipe(m.Main)
				m.refreshSummary(slot)
			}
			gentleSnack.apply(&p.Snack)
		},
	},
	{
		pref: PrefWeightGain,
		note: "Portions nudged up with an energy-dense snack.",
		apply: func(p *DayPlan) {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Nutrient = m.Nutrient.Rebalance(4, 4)
			}
			recoverySnack.apply(&p.Snack)
		},
	},
	{
		pref: PrefWeightLoss,
		note: "Carbohydrate share trimmed with a light snack.",
		apply: func(p *DayPlan) {
			for _, slot := range MainSlots {
				m := p.Meal(slot)
				m.Nutrient = m.Nutrient.Rebalance(-6, 3)
			}
			lowGlycemicSnack.apply(&p.Snack)
		},
	},
}

// ApplyPreferences applies every active preference toggle in the fixed
// declaration order above. Later toggles overwrite earlier ones on field
// collisions; each active toggle contributes exactly one note.
func ApplyPreferences(plan DayPlan, active []PreferenceType) (DayPlan, []string) {
	out := plan.Clone()
	if len(active) == 0 {
		return out, nil
	}

	set := make(map[PreferenceType]bool, len(active))
	for _, p := range active {
		set[p] = true
	}

	var notes []string
	for _, rule := range preferenceRules {
		if !set[rule.pref] {
			continue
		}
		rule.apply(&out)
		notes = appendNote(notes, rule.note)
	}
	return out, notes
}
