package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oncoplate/backend/config"
	"github.com/oncoplate/backend/internal/database"
	"github.com/oncoplate/backend/internal/mealplan"
	"github.com/oncoplate/backend/internal/models"
)

// Seeds a demo account with a filled-in profile, an active treatment stage,
// medications, preference tags and a week of intake logs so a fresh
// deployment has something to plan against.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}

func seed(db *gorm.DB) error {
	const demoEmail = "demo@oncoplate.dev"

	var existing models.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		log.Printf("Demo user %s already exists, skipping", demoEmail)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demopassword1"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:         "Demo Patient",
		Email:        demoEmail,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	profile := models.UserProfile{
		UserID:      user.ID,
		Age:         57,
		Sex:         "female",
		HeightCm:    161,
		WeightKg:    55.5,
		Ethnicity:   "korean",
		CancerType:  "breast cancer",
		CancerStage: "stage 2",
	}
	if err := db.Create(&profile).Error; err != nil {
		return err
	}

	stages := []models.TreatmentStage{
		{UserID: user.ID, StageType: mealplan.StageSurgery, Label: "Lumpectomy", StageOrder: 1, Status: "done"},
		{UserID: user.ID, StageType: mealplan.StageChemo, Label: "First-line chemotherapy", StageOrder: 2, Status: "active"},
		{UserID: user.ID, StageType: mealplan.StageHormone, Label: "Hormone maintenance", StageOrder: 3, Status: "planned"},
	}
	for i := range stages {
		if err := db.Create(&stages[i]).Error; err != nil {
			return err
		}
	}

	medications := []models.MedicationSchedule{
		{UserID: user.ID, Name: "tamoxifen", Category: "hormone therapy", Timing: "breakfast"},
		{UserID: user.ID, Name: "dexamethasone", Category: "steroid", Timing: "lunch"},
	}
	for i := range medications {
		if err := db.Create(&medications[i]).Error; err != nil {
			return err
		}
	}

	for _, pref := range []mealplan.PreferenceType{mealplan.PrefSoftTexture, mealplan.PrefLowSugar, mealplan.PrefFishForward} {
		row := models.DietaryPreference{UserID: user.ID, PreferenceType: string(pref)}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}

	return seedLogs(db, user.ID)
}

// seedLogs writes the past week of intake. The pattern leans on flour and
// sugar so the intake optimizer has something to correct.
func seedLogs(db *gorm.DB, userID uuid.UUID) error {
	days := []struct {
		breakfast, lunch, dinner, snack string
		snackEaten                      bool
	}{
		{"white rice with steamed egg", "cream pasta", "grilled mackerel", "sweet red-bean bread", true},
		{"soft tofu porridge", "pork cutlet with rice", "beef and radish soup", "fruit yogurt", true},
		{"white rice with seaweed", "cold buckwheat noodles", "braised tofu", "castella cake", true},
		{"rice porridge with chicken", "bibimbap", "steamed cod", "plain crackers", false},
		{"toast with jam", "ramen with egg", "pork bulgogi", "chocolate cookies", true},
		{"white rice with soybean soup", "kimbap", "grilled salmon", "sweet rice punch", true},
		{"oatmeal with banana", "udon noodles", "chicken and vegetable stew", "rice cake", false},
	}

	today := time.Now()
	for i, day := range days {
		date := today.AddDate(0, 0, i-len(days)).Format("2006-01-02")
		dayLog := models.MealLog{UserID: userID, Date: date}
		if err := db.Create(&dayLog).Error; err != nil {
			return err
		}

		items := []models.MealLogItem{
			{MealLogID: dayLog.ID, Slot: "breakfast", Name: day.breakfast, Eaten: true, Servings: 1},
			{MealLogID: dayLog.ID, Slot: "lunch", Name: day.lunch, Eaten: true, Servings: 2},
			{MealLogID: dayLog.ID, Slot: "dinner", Name: day.dinner, Eaten: true, Servings: 1},
			{MealLogID: dayLog.ID, Slot: "snack", Name: day.snack, Eaten: day.snackEaten, NotEaten: !day.snackEaten, Servings: 1},
		}
		for j := range items {
			if err := db.Create(&items[j]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
