package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncoplate/backend/internal/models"
)

func TestGetProfileAfterRegister(t *testing.T) {
	router, env := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, userID, profile.UserID)
}

func TestUpdateProfilePartial(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"age":          58,
		"sex":          "female",
		"height_cm":    162.0,
		"weight_kg":    54.5,
		"cancer_type":  "breast cancer",
		"cancer_stage": "stage 2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A second partial update must leave the untouched fields alone.
	w = PerformRequest(router, http.MethodPut, "/api/v1/profile", token, map[string]interface{}{
		"weight_kg": 53.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, 58, profile.Age)
	assert.Equal(t, "breast cancer", profile.CancerType)
	assert.Equal(t, 53.0, profile.WeightKg)
}

func TestSetAndGetPreferences(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodPut, "/api/v1/profile/preferences", token, map[string]interface{}{
		"preferences": []string{"vegetarian", "low-sugar", "soft-texture"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/profile/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Preferences []string `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"vegetarian", "low-sugar", "soft-texture"}, body.Preferences)

	// Replacing the set drops the old tags entirely.
	w = PerformRequest(router, http.MethodPut, "/api/v1/profile/preferences", token, map[string]interface{}{
		"preferences": []string{"high-protein"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/profile/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"high-protein"}, body.Preferences)
}

func TestSetStageDemotesPreviousActive(t *testing.T) {
	router, env := SetupTestRouter(t)
	userID, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodPost, "/api/v1/profile/stages", token, map[string]interface{}{
		"stage_type":  "chemo",
		"label":       "First-line chemotherapy",
		"stage_order": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, http.MethodPost, "/api/v1/profile/stages", token, map[string]interface{}{
		"stage_type":  "radiation",
		"label":       "Radiation therapy",
		"stage_order": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var active []models.TreatmentStage
	require.NoError(t, env.DB.Where("user_id = ? AND status = ?", userID, "active").Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, "radiation", active[0].StageType)

	var done []models.TreatmentStage
	require.NoError(t, env.DB.Where("user_id = ? AND status = ?", userID, "done").Find(&done).Error)
	require.Len(t, done, 1)
	assert.Equal(t, "chemo", done[0].StageType)
}

func TestMedicationLifecycle(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodPost, "/api/v1/profile/medications", token, map[string]interface{}{
		"name":     "tamoxifen",
		"category": "hormone therapy",
		"timing":   "breakfast",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.MedicationSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = PerformRequest(router, http.MethodGet, "/api/v1/profile/medications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Medications []models.MedicationSchedule `json:"medications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Medications, 1)
	assert.Equal(t, "tamoxifen", body.Medications[0].Name)

	w = PerformRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/profile/medications/%s", created.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/profile/medications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Medications)
}

func TestDeleteMedicationOfAnotherUser(t *testing.T) {
	router, env := SetupTestRouter(t)
	ownerID, _ := CreateTestUserAndToken(t, env)
	_, otherToken := CreateTestUserAndToken(t, env)

	med := models.MedicationSchedule{UserID: ownerID, Name: "warfarin", Timing: "dinner"}
	require.NoError(t, env.DB.Create(&med).Error)

	w := PerformRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/profile/medications/%s", med.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidStageStatusRejected(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodPost, "/api/v1/profile/stages", token, map[string]interface{}{
		"stage_type": "chemo",
		"status":     "paused",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
