package mealplan

// Curated dish pools. These are static read-only tables; nothing in the
// engine mutates them. Pool order matters: the builder indexes into them with
// seed arithmetic and the anti-repetition pass rotates through them cyclically.

var riceTypes = []string{
	"mixed-grain rice",
	"brown rice",
	"barley rice",
	"steamed white rice",
	"quinoa rice",
	"oat rice",
}

var mainPools = map[Slot][]string{
	SlotBreakfast: {
		"steamed egg custard",
		"grilled mackerel",
		"soft tofu with soy drizzle",
		"rolled omelet with vegetables",
		"steamed white fish",
		"pan-seared tofu steak",
		"chicken breast porridge topping",
	},
	SlotLunch: {
		"grilled chicken breast",
		"braised mackerel with radish",
		"stir-fried pork tenderloin",
		"steamed cod with ginger",
		"tofu and mushroom stir-fry",
		"bulgogi-style lean beef",
		"grilled salmon",
		"soy-simmered chicken thigh",
	},
	SlotDinner: {
		"steamed chicken breast salad",
		"grilled white fish",
		"braised tofu with leeks",
		"stir-fried squid and vegetables",
		"lean beef and radish braise",
		"steamed salmon with lemon",
		"egg and chive stir-fry",
		"seasoned boiled pork slices",
	},
	SlotSnack: {
		"plain greek yogurt",
		"steamed sweet potato",
		"banana",
		"boiled egg",
		"rice cake with soybean powder",
		"apple slices",
		"roasted chestnuts",
	},
}

var soupPools = map[Slot][]string{
	SlotBreakfast: {
		"seaweed soup",
		"soft tofu soup",
		"mild radish soup",
		"egg drop soup",
		"potato and leek soup",
	},
	SlotLunch: {
		"bean sprout soup",
		"mild kimchi soup with tofu",
		"beef and radish soup",
		"mushroom clear soup",
		"spinach and clam soup",
		"zucchini soybean-paste soup",
	},
	SlotDinner: {
		"mild soybean-paste soup",
		"chicken and napa cabbage soup",
		"fish cake clear soup",
		"tofu and zucchini soup",
		"dried pollock soup",
	},
	// Snack "soup" is the hydration choice.
	SlotSnack: {
		"warm barley tea",
		"plain water",
		"unsweetened soy milk",
		"mild green tea",
		"warm corn-silk tea",
	},
}

var sidePool = []string{
	"seasoned spinach",
	"steamed broccoli",
	"stir-fried zucchini",
	"seasoned bean sprouts",
	"braised lotus root",
	"cucumber salad",
	"seasoned eggplant",
	"stir-fried mushrooms",
	"blanched cabbage wraps",
	"seasoned dried radish",
	"soft tofu cubes with sesame",
	"carrot and burdock braise",
}

var snackSidePool = []string{
	"a few walnuts",
	"blueberries",
	"cherry tomatoes",
	"cucumber sticks",
	"dried persimmon slice",
}

// seasonalSides holds one bucket per calendar month (index 1..12).
var seasonalSides = [13][]string{
	1:  {"braised winter radish", "seasoned dried seaweed"},
	2:  {"napa cabbage salad", "seasoned shepherd's purse"},
	3:  {"spring greens with soybean paste", "blanched fatsia shoots"},
	4:  {"seasoned mugwort", "stir-fried spring garlic stems"},
	5:  {"seasoned crown daisy", "young radish greens"},
	6:  {"chilled cucumber strips", "steamed young potatoes"},
	7:  {"stir-fried young squash", "chilled eggplant salad"},
	8:  {"sweet corn kernels", "chilled tomato salad"},
	9:  {"sauteed shiitake mushrooms", "steamed chestnut halves"},
	10: {"roasted pumpkin wedges", "seasoned taro stems"},
	11: {"braised daikon with sesame", "apple and cabbage slaw"},
	12: {"seasoned winter spinach", "braised burdock root"},
}

const (
	flourCautionGentle = "Try to keep refined-flour foods to one serving today."
	flourCautionStrict = "Avoid refined-flour foods today; choose rice or whole grains instead."
)

// Nutrient baselines by stage group and meal time. Carbohydrate share steps
// down through the day within each group; the snack baseline is fixed.
var baselineByGroup = map[stageGroup]map[Slot]Nutrient{
	groupDefault: {
		SlotBreakfast: {Carb: 55, Protein: 20, Fat: 25},
		SlotLunch:     {Carb: 50, Protein: 25, Fat: 25},
		SlotDinner:    {Carb: 45, Protein: 30, Fat: 25},
	},
	groupLowerCarb: {
		SlotBreakfast: {Carb: 50, Protein: 25, Fat: 25},
		SlotLunch:     {Carb: 45, Protein: 30, Fat: 25},
		SlotDinner:    {Carb: 40, Protein: 32, Fat: 28},
	},
	groupSoft: {
		SlotBreakfast: {Carb: 58, Protein: 20, Fat: 22},
		SlotLunch:     {Carb: 52, Protein: 24, Fat: 24},
		SlotDinner:    {Carb: 48, Protein: 26, Fat: 26},
	},
}

var snackBaseline = Nutrient{Carb: 45, Protein: 20, Fat: 35}

// Softer swaps used by the age and treatment-intensity rules.
var softMains = map[Slot]string{
	SlotBreakfast: "soft steamed egg custard",
	SlotLunch:     "steamed cod with ginger",
	SlotDinner:    "braised tofu with leeks",
}

var softSoups = map[Slot]string{
	SlotBreakfast: "soft tofu soup",
	SlotLunch:     "mushroom clear soup",
	SlotDinner:    "tofu and zucchini soup",
}

// Gentlest options used by the advanced-stage override.
var gentleMains = map[Slot]string{
	SlotBreakfast: "rice porridge with minced chicken",
	SlotLunch:     "soft steamed white fish",
	SlotDinner:    "soft tofu with warm soy drizzle",
}

var gentleSoups = map[Slot]string{
	SlotBreakfast: "mild rice-water soup",
	SlotLunch:     "clear vegetable broth",
	SlotDinner:    "mild seaweed broth",
}

// Denser, protein-forward swaps for underweight users.
var denseMains = map[Slot]string{
	SlotBreakfast: "rolled omelet with cheese",
	SlotLunch:     "soy-simmered chicken thigh",
	SlotDinner:    "grilled salmon with sesame oil",
}

const (
	highFiberRice     = "steel-cut barley and bean rice"
	lowIrritationSoup = "mild rice-water soup"
	lowSodiumSoupTag  = "low-sodium "
	lowSodiumSide     = "unsalted steamed vegetables"
	neutralSide       = "stir-fried zucchini"
)

// Sides rich in vitamin K, swapped out for anticoagulant users.
var vitaminKIngredients = []string{"spinach", "kale", "broccoli", "seaweed", "cabbage", "crown daisy"}

// snackTemplate fully replaces the snack slot.
type snackTemplate struct {
	Main  string
	Drink string
	Sides []string
}

func (t snackTemplate) apply(m *Meal) {
	m.Main = t.Main
	m.Soup = t.Drink
	m.Sides = append([]string(nil), t.Sides...)
	m.RecipeName, m.RecipeSteps = buildRecipe(t.Main)
	m.refreshSummary(SlotSnack)
}

var (
	gentleSnack = snackTemplate{
		Main:  "soft rice pudding",
		Drink: "warm barley tea",
		Sides: []string{"ripe banana"},
	}
	proteinSnack = snackTemplate{
		Main:  "plain greek yogurt with nuts",
		Drink: "plain water",
		Sides: []string{"boiled egg"},
	}
	recoverySnack = snackTemplate{
		Main:  "banana and peanut-butter rice cake",
		Drink: "unsweetened soy milk",
		Sides: []string{"steamed sweet potato"},
	}
	antioxidantSnack = snackTemplate{
		Main:  "mixed berries with yogurt",
		Drink: "mild green tea",
		Sides: []string{"a few walnuts"},
	}
	lowGlycemicSnack = snackTemplate{
		Main:  "cucumber sticks with hummus",
		Drink: "warm corn-silk tea",
		Sides: []string{"cherry tomatoes"},
	}
)

// cancerProfile is one entry of the ordered cancer-type menu table. The first
// profile whose keyword matches wins and fully overwrites the three main
// meals; SnackOverride is optional.
type cancerProfile struct {
	Name          string
	Keywords      []string
	RiceType      string
	Mains         map[Slot]string
	Soups         map[Slot]string
	Sides         []string
	SnackOverride *snackTemplate
}

var cancerProfiles = []cancerProfile{
	{
		Name:     "breast",
		Keywords: []string{"breast"},
		RiceType: "mixed-grain rice",
		Mains: map[Slot]string{
			SlotBreakfast: "soft tofu with soy drizzle",
			SlotLunch:     "grilled chicken breast",
			SlotDinner:    "steamed salmon with lemon",
		},
		Soups: map[Slot]string{
			SlotBreakfast: "seaweed soup",
			SlotLunch:     "mushroom clear soup",
			SlotDinner:    "mild soybean-paste soup",
		},
		Sides: []string{"steamed broccoli", "seasoned bean sprouts", "cucumber salad"},
		SnackOverride: &snackTemplate{
			Main:  "mixed berries with yogurt",
			Drink: "mild green tea",
			Sides: []string{"a few walnuts"},
		},
	},
	{
		Name:     "digestive",
		Keywords: []string{"stomach", "gastric", "colon", "colorect", "rect", "esophag", "digestive", "bowel"},
		RiceType: "steamed white rice",
		Mains: map[Slot]string{
			SlotBreakfast: "soft steamed egg custard",
			SlotLunch:     "steamed cod with ginger",
			SlotDinner:    "braised tofu with leeks",
		},
		Soups: map[Slot]string{
			SlotBreakfast: "mild rice-water soup",
			SlotLunch:     "clear vegetable broth",
			SlotDinner:    "tofu and zucchini soup",
		},
		Sides: []string{"blanched cabbage wraps", "stir-fried zucchini", "soft tofu cubes with sesame"},
	},
	{
		Name:     "lung",
		Keywords: []string{"lung"},
		RiceType: "brown rice",
		Mains: map[Slot]string{
			SlotBreakfast: "rolled omelet with vegetables",
			SlotLunch:     "braised mackerel with radish",
			SlotDinner:    "steamed chicken breast salad",
		},
		Soups: map[Slot]string{
			SlotBreakfast: "potato and leek soup",
			SlotLunch:     "bean sprout soup",
			SlotDinner:    "dried pollock soup",
		},
		Sides: []string{"seasoned spinach", "braised lotus root", "stir-fried mushrooms"},
	},
	{
		Name:     "hepatobiliary",
		Keywords: []string{"liver", "hepat", "bile", "gallbladder", "pancrea"},
		RiceType: "barley rice",
		Mains: map[Slot]string{
			SlotBreakfast: "steamed white fish",
			SlotLunch:     "tofu and mushroom stir-fry",
			SlotDinner:    "grilled white fish",
		},
		Soups: map[Slot]string{
			SlotBreakfast: "mild radish soup",
			SlotLunch:     "zucchini soybean-paste soup",
			SlotDinner:    "mild seaweed broth",
		},
		Sides: []string{"steamed broccoli", "seasoned eggplant", "cucumber salad"},
	},
	{
		Name:     "hematologic",
		Keywords: []string{"leukemia", "lymphoma", "myeloma", "blood", "hemato"},
		RiceType: "steamed white rice",
		Mains: map[Slot]string{
			SlotBreakfast: "steamed egg custard",
			SlotLunch:     "soy-simmered chicken thigh",
			SlotDinner:    "lean beef and radish braise",
		},
		Soups: map[Slot]string{
			SlotBreakfast: "egg drop soup",
			SlotLunch:     "beef and radish soup",
			SlotDinner:    "chicken and napa cabbage soup",
		},
		Sides: []string{"braised lotus root", "carrot and burdock braise", "seasoned dried radish"},
		SnackOverride: &snackTemplate{
			Main:  "well-washed peeled apple slices",
			Drink: "boiled and cooled water",
			Sides: []string{"pasteurized yogurt"},
		},
	},
	{
		Name:     "thyroid",
		Keywords: []string{"thyroid"},
		RiceType: "mixed-grain rice",
		Mains: map[Slot]string{
			SlotBreakfast: "pan-seared tofu steak",
			SlotLunch:     "grilled chicken breast",
			SlotDinner:    "egg and chive stir-fry",
		},
		Soups: map[Slot]string{
			SlotBreakfast: "mild radish soup",
			SlotLunch:     "mushroom clear soup",
			SlotDinner:    "tofu and zucchini soup",
		},
		Sides: []string{"cucumber salad", "stir-fried zucchini", "seasoned eggplant"},
	},
	{
		Name:     "kidney",
		Keywords: []string{"kidney", "renal", "bladder"},
		RiceType: "steamed white rice",
		Mains: map[Slot]string{
			SlotBreakfast: "rolled omelet with vegetables",
			SlotLunch:     "steamed cod with ginger",
			SlotDinner:    "seasoned boiled pork slices",
		},
		Soups: map[Slot]string{
			SlotBreakfast: "low-sodium egg drop soup",
			SlotLunch:     "low-sodium mushroom clear soup",
			SlotDinner:    "low-sodium tofu and zucchini soup",
		},
		Sides: []string{"unsalted steamed vegetables", "cucumber salad", "blanched cabbage wraps"},
	},
	{
		Name:     "cervical",
		Keywords: []string{"cervical", "cervix", "uterine", "ovarian", "endometri"},
		RiceType: "brown rice",
		Mains: map[Slot]string{
			SlotBreakfast: "soft tofu with soy drizzle",
			SlotLunch:     "grilled salmon",
			SlotDinner:    "steamed chicken breast salad",
		},
		Soups: map[Slot]string{
			SlotBreakfast: "seaweed soup",
			SlotLunch:     "spinach and clam soup",
			SlotDinner:    "mild soybean-paste soup",
		},
		Sides: []string{"seasoned spinach", "steamed broccoli", "blueberries"},
	},
}

// Medication keyword groups for the medication optimizer.
var (
	hormoneTargetedDrugs = []string{
		"tamoxifen", "letrozole", "anastrozole", "exemestane", "fulvestrant",
		"trastuzumab", "imatinib", "erlotinib", "gefitinib", "osimertinib",
	}
	steroidDrugs = []string{
		"dexamethasone", "prednisone", "prednisolone", "methylprednisolone", "steroid",
	}
	anticoagulantDrugs = []string{
		"warfarin", "heparin", "rivaroxaban", "apixaban", "edoxaban", "aspirin",
	}
)

// Generic preparation steps keyed by cooking-method keyword; used to derive a
// short recipe for any main dish, including regenerated ones.
func buildRecipe(main string) (string, []string) {
	name := "Home-style " + main
	switch {
	case containsAny(main, "grill"):
		return name, []string{
			"Pat the main ingredient dry and season lightly.",
			"Grill over medium heat until just cooked through.",
			"Rest briefly and serve warm.",
		}
	case containsAny(main, "steam"):
		return name, []string{
			"Prepare the main ingredient and place in a steamer.",
			"Steam over gentle heat until tender.",
			"Finish with a light seasoning before serving.",
		}
	case containsAny(main, "stir-fry", "stir-fried"):
		return name, []string{
			"Cut ingredients into even bite-size pieces.",
			"Stir-fry quickly over high heat with a little oil.",
			"Season lightly at the end and serve immediately.",
		}
	case containsAny(main, "braise", "simmer"):
		return name, []string{
			"Combine ingredients with a light soy-based broth.",
			"Simmer gently until tender and the sauce reduces.",
			"Serve warm with the reduced sauce spooned over.",
		}
	case containsAny(main, "porridge", "pudding", "custard"):
		return name, []string{
			"Combine ingredients over low heat, stirring often.",
			"Cook slowly until soft and smooth.",
			"Cool slightly before serving.",
		}
	default:
		return name, []string{
			"Rinse and prepare the ingredients.",
			"Cook gently with minimal added salt and fat.",
			"Plate and serve at a comfortable temperature.",
		}
	}
}
