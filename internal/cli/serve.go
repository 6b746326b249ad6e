package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"hwdoctor/internal/collectors"
	"hwdoctor/internal/config"
	"hwdoctor/internal/controllers"
	"hwdoctor/internal/middleware"
	"hwdoctor/internal/probe"
	"hwdoctor/internal/report"
	"hwdoctor/internal/routes"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and JSON API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
	SilenceUsage: true,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if serveAddress != "" {
		cfg.Server.Address = serveAddress
	}

	assembler, err := collectors.NewAssembler(probe.System())
	if err != nil {
		return err
	}
	reporter, err := report.NewHTMLReporter(cfg.ReportTitle)
	if err != nil {
		return fmt.Errorf("failed to load report template: %w", err)
	}

	auth := middleware.NewAuthService(cfg.Server.AuthSecret)
	if auth != nil {
		host, _ := os.Hostname()
		token, err := auth.GenerateToken(host)
		if err != nil {
			return fmt.Errorf("failed to generate api token: %w", err)
		}
		log.Printf("API token: %s", token)
	} else {
		log.Printf("Warning: no auth secret configured, API is open")
	}

	rc := controllers.NewReportController(assembler, cfg.Thresholds, reporter)
	lc := controllers.NewLiveController(auth, cfg.Server.PushInterval)

	log.Printf("Collecting initial snapshot...")
	rc.Refresh()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	routes.Register(r, rc, lc, auth)

	log.Printf("Serving on http://%s", cfg.Server.Address)
	return r.Run(cfg.Server.Address)
}
