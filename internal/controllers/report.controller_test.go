package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwdoctor/internal/models"
	"hwdoctor/internal/report"
)

func newCachedController(t *testing.T) *ReportController {
	t.Helper()
	reporter, err := report.NewHTMLReporter("test report")
	require.NoError(t, err)

	rc := &ReportController{reporter: reporter}
	rc.snap = models.Snapshot{
		ID:     "snap-1",
		System: models.SystemOverview{Hostname: "workbench"},
		CPU:    models.CPUInfo{Brand: "Test CPU", PhysicalCores: 4, LogicalCores: 8},
		GPUs:   []models.GPUInfo{models.SentinelGPU()},
	}
	rc.health = models.HealthReport{
		Score: 100,
		Recommendations: []models.Recommendation{{
			Severity: models.SeverityGood,
			Message:  "All systems healthy! No issues detected.",
		}},
	}
	return rc
}

func TestGetSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rc := newCachedController(t)

	r := gin.New()
	r.GET("/api/snapshot", rc.GetSnapshot)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/snapshot", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, "snap-1", snap.ID)
	assert.Equal(t, "Test CPU", snap.CPU.Brand)
}

func TestGetHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rc := newCachedController(t)

	r := gin.New()
	r.GET("/api/health", rc.GetHealth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var result models.HealthReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 100, result.Score)
	require.Len(t, result.Recommendations, 1)
}

func TestGetOverview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rc := newCachedController(t)

	r := gin.New()
	r.GET("/api/overview", rc.GetOverview)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/overview", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var overview models.SystemOverview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, "workbench", overview.Hostname)
}

func TestGetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rc := newCachedController(t)

	r := gin.New()
	r.GET("/", rc.GetDashboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Test CPU")
}
