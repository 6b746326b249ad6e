package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"hwdoctor/internal/middleware"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveReading is the lightweight payload pushed over the websocket.
// It skips the heavy per-device probing and only samples the two
// metrics that change fast enough to be worth streaming.
type liveReading struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	Timestamp     string  `json:"timestamp"`
}

// LiveController streams CPU and memory usage to websocket clients.
type LiveController struct {
	auth     *middleware.AuthService
	interval time.Duration
}

func NewLiveController(auth *middleware.AuthService, interval time.Duration) *LiveController {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &LiveController{auth: auth, interval: interval}
}

// HandleLive upgrades the connection and pushes readings until the
// client goes away. Browsers cannot set headers on websocket
// requests, so the token is accepted as a query parameter here.
func (lc *LiveController) HandleLive(c *gin.Context) {
	if lc.auth != nil {
		if _, err := lc.auth.ValidateToken(c.Query("token")); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Warning: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Prime the cpu counters so the first interval reading is a real
	// delta instead of a since-boot average.
	cpu.Percent(0, false)

	ticker := time.NewTicker(lc.interval)
	defer ticker.Stop()

	for range ticker.C {
		reading := liveReading{Timestamp: time.Now().Format(time.RFC3339)}
		if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
			reading.CPUPercent = percents[0]
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			reading.MemoryPercent = vm.UsedPercent
		}
		if err := conn.WriteJSON(reading); err != nil {
			return
		}
	}
}
