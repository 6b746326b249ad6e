package controllers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"hwdoctor/internal/collectors"
	"hwdoctor/internal/config"
	"hwdoctor/internal/health"
	"hwdoctor/internal/models"
	"hwdoctor/internal/report"
)

// ReportController serves the latest hardware snapshot and health
// report. A full collection pass is expensive (sampling windows add
// up to a couple of seconds), so the controller caches the most
// recent result and re-collects only on demand.
type ReportController struct {
	assembler  *collectors.Assembler
	thresholds config.Thresholds
	reporter   *report.HTMLReporter

	mu     sync.RWMutex
	snap   models.Snapshot
	health models.HealthReport
}

func NewReportController(assembler *collectors.Assembler, thresholds config.Thresholds, reporter *report.HTMLReporter) *ReportController {
	return &ReportController{
		assembler:  assembler,
		thresholds: thresholds,
		reporter:   reporter,
	}
}

// Refresh runs a full collection pass and rescoring, replacing the
// cached snapshot.
func (rc *ReportController) Refresh() models.Snapshot {
	snap := rc.assembler.Collect()
	result := health.Score(snap, rc.thresholds)

	rc.mu.Lock()
	rc.snap = snap
	rc.health = result
	rc.mu.Unlock()
	return snap
}

func (rc *ReportController) current() (models.Snapshot, models.HealthReport) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.snap, rc.health
}

// GetDashboard renders the HTML report for the cached snapshot.
func (rc *ReportController) GetDashboard(c *gin.Context) {
	snap, result := rc.current()
	body, err := rc.reporter.Render(snap, result)
	if err != nil {
		log.Printf("Warning: failed to render dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// GetSnapshot returns the cached snapshot as JSON.
func (rc *ReportController) GetSnapshot(c *gin.Context) {
	snap, _ := rc.current()
	c.JSON(http.StatusOK, snap)
}

// GetHealth returns the cached health report.
func (rc *ReportController) GetHealth(c *gin.Context) {
	_, result := rc.current()
	c.JSON(http.StatusOK, result)
}

// GetOverview returns just the host identity block.
func (rc *ReportController) GetOverview(c *gin.Context) {
	snap, _ := rc.current()
	c.JSON(http.StatusOK, snap.System)
}

// PostScan triggers a fresh collection pass and returns the new
// snapshot once it completes.
func (rc *ReportController) PostScan(c *gin.Context) {
	snap := rc.Refresh()
	c.JSON(http.StatusOK, snap)
}
