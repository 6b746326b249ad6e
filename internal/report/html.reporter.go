package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"
)

//go:embed templates/report.html
var reportTemplate string

// HTMLReporter renders a snapshot and its health report into a
// self-contained HTML file.
type HTMLReporter struct {
	title string
	tmpl  *template.Template
}

type reportData struct {
	Title     string
	Generated string
	Snapshot  models.Snapshot
	Health    models.HealthReport
}

func NewHTMLReporter(title string) (*HTMLReporter, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"scoreClass": scoreClass,
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLReporter{title: title, tmpl: tmpl}, nil
}

// Generate writes the report to outputPath.
func (r *HTMLReporter) Generate(snap models.Snapshot, health models.HealthReport, outputPath string) error {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, reportData{
		Title:     r.title,
		Generated: time.Now().Format("2006-01-02 15:04:05"),
		Snapshot:  snap,
		Health:    health,
	})
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Render returns the report body without touching the filesystem; the
// serve mode uses it directly.
func (r *HTMLReporter) Render(snap models.Snapshot, health models.HealthReport) ([]byte, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, reportData{
		Title:     r.title,
		Generated: time.Now().Format("2006-01-02 15:04:05"),
		Snapshot:  snap,
		Health:    health,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func scoreClass(score int) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 60:
		return "warning"
	default:
		return "critical"
	}
}

// ConvertPDF turns a rendered HTML report into a PDF by invoking
// wkhtmltopdf. The tool is optional; absence is reported, not fatal to
// the run.
func ConvertPDF(p probe.Prober, htmlPath, pdfPath string) error {
	if !p.LookPath("wkhtmltopdf") {
		return fmt.Errorf("wkhtmltopdf not installed, skipping PDF export")
	}
	if _, ok := p.TryRun("wkhtmltopdf", htmlPath, pdfPath); !ok {
		return fmt.Errorf("wkhtmltopdf failed for %s", htmlPath)
	}
	return nil
}
