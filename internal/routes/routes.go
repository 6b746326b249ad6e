package routes

import (
	"github.com/gin-gonic/gin"

	"hwdoctor/internal/controllers"
	"hwdoctor/internal/middleware"
)

// Register wires every serve-mode endpoint onto the router. The
// dashboard and websocket stay open; the JSON API sits behind auth
// when an AuthService is configured.
func Register(r *gin.Engine, rc *controllers.ReportController, lc *controllers.LiveController, auth *middleware.AuthService) {
	r.GET("/", rc.GetDashboard)
	r.GET("/ws", lc.HandleLive)

	api := r.Group("/api")
	api.Use(auth.RequireAuth())
	{
		api.GET("/snapshot", rc.GetSnapshot)
		api.GET("/health", rc.GetHealth)
		api.GET("/overview", rc.GetOverview)
		api.POST("/scan", rc.PostScan)
	}
}
