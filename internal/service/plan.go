package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/oncoplate/backend/internal/mealplan"
	"github.com/oncoplate/backend/internal/models"
)

// planCacheTTL bounds how long a generated plan stays in Redis. The pipeline
// is referentially transparent, so a cached plan never goes stale within a
// day; the TTL only bounds memory.
const planCacheTTL = 24 * time.Hour

// PlanService assembles the engine inputs from storage, runs the
// optimization pipeline and persists the result.
type PlanService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewPlanService(db *gorm.DB, redisClient *redis.Client) *PlanService {
	return &PlanService{
		db:    db,
		redis: redisClient,
	}
}

// GetOrGeneratePlan returns the stored plan for the date, or generates,
// persists and caches a new one.
func (s *PlanService) GetOrGeneratePlan(ctx context.Context, userID uuid.UUID, dateKey string) (*models.MealPlan, error) {
	var existing models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, dateKey).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if cached, ok := s.cachedPlan(ctx, userID, dateKey); ok {
		return cached, nil
	}

	record, err := s.generate(ctx, userID, dateKey)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	s.cachePlan(ctx, record)
	return record, nil
}

// ListPlans returns the stored plans in [from, to], oldest first.
func (s *PlanService) ListPlans(ctx context.Context, userID uuid.UUID, from, to string) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&plans).Error
	return plans, err
}

// generate runs the full pipeline: build, then the five optimization stages
// in their fixed order, collecting every stage's notes.
func (s *PlanService) generate(ctx context.Context, userID uuid.UUID, dateKey string) (*models.MealPlan, error) {
	dietCtx, err := s.loadDietContext(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := loadLogs(ctx, s.db, userID, shiftDate(dateKey, -historyWindowDays), dateKey)
	if err != nil {
		return nil, err
	}
	window, err := recentPlans(ctx, s.db, userID, dateKey)
	if err != nil {
		return nil, err
	}

	stageType := mealplan.StageOther
	if dietCtx.Stage != nil {
		stageType = dietCtx.Stage.Type
	}
	medicationNames := make([]string, 0, len(dietCtx.Medications))
	for _, m := range dietCtx.Medications {
		medicationNames = append(medicationNames, m.Name)
	}
	bmi, _ := dietCtx.BMI()

	var notes []string
	plan := mealplan.BuildPlan(dateKey, stageType, historyScore(logs), nil)

	plan, stageNotes := mealplan.ApplyContext(plan, dietCtx)
	notes = append(notes, stageNotes...)

	plan, stageNotes = mealplan.ApplyMedications(plan, medicationNames)
	notes = append(notes, stageNotes...)

	plan, stageNotes = mealplan.ApplyPreferences(plan, prefs)
	notes = append(notes, stageNotes...)

	plan, stageNotes = mealplan.ApplyIntakeCorrection(dateKey, plan, logs, mealplan.Condition{StageType: stageType, BMI: bmi})
	notes = append(notes, stageNotes...)

	plan, stageNotes = mealplan.ApplyAntiRepetition(plan, window, recentPlanWindowDays)
	notes = append(notes, stageNotes...)

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	return &models.MealPlan{
		UserID:    userID,
		Date:      dateKey,
		StageType: stageType,
		Plan:      planJSON,
		Notes:     models.JSONBStringArray(notes),
	}, nil
}

// loadDietContext assembles the engine's UserDietContext from the profile,
// active treatment stage and medication schedules. Missing rows degrade to
// zero values so generation never fails on an incomplete profile.
func (s *PlanService) loadDietContext(ctx context.Context, userID uuid.UUID) (mealplan.UserDietContext, error) {
	var out mealplan.UserDietContext

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return out, err
	}
	out.Age = profile.Age
	out.Sex = profile.Sex
	out.HeightCm = profile.HeightCm
	out.WeightKg = profile.WeightKg
	out.Ethnicity = profile.Ethnicity
	out.CancerType = profile.CancerType
	out.CancerStage = profile.CancerStage

	var stage models.TreatmentStage
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "active").
		Order("stage_order DESC").
		First(&stage).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return out, err
	}
	if err == nil {
		out.Stage = &mealplan.TreatmentStage{
			Type:   stage.StageType,
			Label:  stage.Label,
			Order:  stage.StageOrder,
			Status: stage.Status,
		}
	}

	var meds []models.MedicationSchedule
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&meds).Error; err != nil {
		return out, err
	}
	for _, m := range meds {
		out.Medications = append(out.Medications, mealplan.MedicationSchedule{
			Name:     m.Name,
			Category: m.Category,
			Timing:   mealplan.Slot(m.Timing),
		})
	}

	return out, nil
}

func (s *PlanService) loadPreferences(ctx context.Context, userID uuid.UUID) ([]mealplan.PreferenceType, error) {
	var rows []models.DietaryPreference
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	prefs := make([]mealplan.PreferenceType, 0, len(rows))
	for _, r := range rows {
		prefs = append(prefs, mealplan.PreferenceType(r.PreferenceType))
	}
	return prefs, nil
}

func planCacheKey(userID uuid.UUID, dateKey string) string {
	return fmt.Sprintf("mealplan:%s:%s", userID, dateKey)
}

func (s *PlanService) cachedPlan(ctx context.Context, userID uuid.UUID, dateKey string) (*models.MealPlan, bool) {
	if s.redis == nil {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, planCacheKey(userID, dateKey)).Bytes()
	if err != nil {
		return nil, false
	}
	var record models.MealPlan
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, false
	}
	return &record, true
}

func (s *PlanService) cachePlan(ctx context.Context, record *models.MealPlan) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return
	}
	// Cache failures are not fatal; the database copy is authoritative.
	s.redis.Set(ctx, planCacheKey(record.UserID, record.Date), raw, planCacheTTL)
}
