package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncoplate/backend/internal/models"
)

func TestUpsertAndGetLog(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodPut, "/api/v1/logs/2024-03-14", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"slot": "breakfast", "name": "white rice", "eaten": true, "servings": 1},
			{"slot": "lunch", "name": "cream pasta", "eaten": true, "servings": 2},
			{"slot": "dinner", "name": "tofu and vegetable stir-fry", "not_eaten": true},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/logs/2024-03-14", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dayLog models.MealLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dayLog))
	assert.Equal(t, "2024-03-14", dayLog.Date)
	require.Len(t, dayLog.Items, 3)
	assert.Equal(t, "cream pasta", dayLog.Items[1].Name)
	assert.Equal(t, 2, dayLog.Items[1].Servings)
	// Missing servings defaults to one.
	assert.Equal(t, 1, dayLog.Items[2].Servings)
}

func TestUpsertLogReplacesItems(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodPut, "/api/v1/logs/2024-03-14", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"slot": "breakfast", "name": "white rice", "eaten": true},
			{"slot": "lunch", "name": "cream pasta", "eaten": true},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodPut, "/api/v1/logs/2024-03-14", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"slot": "dinner", "name": "grilled mackerel", "eaten": true},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, http.MethodGet, "/api/v1/logs/2024-03-14", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dayLog models.MealLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dayLog))
	require.Len(t, dayLog.Items, 1)
	assert.Equal(t, "grilled mackerel", dayLog.Items[0].Name)
}

func TestLogDateValidation(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodPut, "/api/v1/logs/march-14", token, map[string]interface{}{
		"items": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = PerformRequest(router, http.MethodPut, "/api/v1/logs/2024-03-14", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"slot": "brunch", "name": "white rice"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLogsRange(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	for _, date := range []string{"2024-03-10", "2024-03-12", "2024-03-20"} {
		w := PerformRequest(router, http.MethodPut, "/api/v1/logs/"+date, token, map[string]interface{}{
			"items": []map[string]interface{}{
				{"slot": "breakfast", "name": "white rice", "eaten": true},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := PerformRequest(router, http.MethodGet, "/api/v1/logs?from=2024-03-09&to=2024-03-15", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Logs []models.MealLog `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Logs, 2)
	assert.Equal(t, "2024-03-10", body.Logs[0].Date)
	assert.Equal(t, "2024-03-12", body.Logs[1].Date)
}

func TestGetLogMissingDate(t *testing.T) {
	router, env := SetupTestRouter(t)
	_, token := CreateTestUserAndToken(t, env)

	w := PerformRequest(router, http.MethodGet, "/api/v1/logs/2024-03-14", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
