package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oncoplate/backend/internal/models"
	"github.com/oncoplate/backend/internal/service"
)

// TestEnv holds the in-memory database and services handler tests run on.
type TestEnv struct {
	DB          *gorm.DB
	AuthService *service.AuthService
	PlanService *service.PlanService
}

// SetupTestEnv creates an isolated in-memory database with the full schema.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A named in-memory database keeps each test isolated while allowing
	// gorm's connection pool to share the same instance.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.TreatmentStage{},
		&models.MedicationSchedule{},
		&models.DietaryPreference{},
		&models.MealLog{},
		&models.MealLogItem{},
		&models.MealPlan{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return &TestEnv{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
		PlanService: service.NewPlanService(db, nil),
	}
}

// SetupTestRouter wires the full route tree against the test environment.
func SetupTestRouter(t *testing.T) (*gin.Engine, *TestEnv) {
	t.Helper()
	env := SetupTestEnv(t)
	router := SetupRouter(env.DB, nil, env.AuthService, env.PlanService)
	return router, env
}

// CreateTestUserAndToken registers a user and returns their ID with a valid token.
func CreateTestUserAndToken(t *testing.T, env *TestEnv) (uuid.UUID, string) {
	t.Helper()

	email := fmt.Sprintf("testuser+%s@example.com", uuid.NewString())
	token, err := env.AuthService.Register("Test User", email, "testpassword123")
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}

	var user models.User
	if err := env.DB.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("failed to load test user: %v", err)
	}
	return user.ID, token
}

// PerformRequest is a helper to make HTTP requests in tests.
func PerformRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}
