package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hwdoctor/internal/bench"
	"hwdoctor/internal/collectors"
	"hwdoctor/internal/config"
	"hwdoctor/internal/health"
	"hwdoctor/internal/probe"
	"hwdoctor/internal/report"
)

var (
	configPath  string
	outputDir   string
	noBenchmark bool
	pdfOutput   bool
)

var rootCmd = &cobra.Command{
	Use:   "hwdoctor",
	Short: "Inspect local hardware and score its health",
	Long: `hwdoctor probes the CPU, memory, storage, GPU, battery and network
of the machine it runs on, scores the result from 0 to 100 and writes
an HTML report. Missing tools or sensors degrade individual fields,
never the whole scan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to hwdoctor.yaml")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "report output directory (overrides config)")
	rootCmd.Flags().BoolVar(&noBenchmark, "no-benchmark", false, "skip CPU, memory and disk benchmarks")
	rootCmd.Flags().BoolVar(&pdfOutput, "pdf", false, "also convert the HTML report to PDF (needs wkhtmltopdf)")
}

// Execute is the CLI entry point.
func Execute() {
	godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScan() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	prober := probe.System()
	assembler, err := collectors.NewAssembler(prober)
	if err != nil {
		return err
	}

	log.Printf("Collecting hardware information...")
	snap := assembler.Collect()

	if !noBenchmark {
		snap.Benchmarks = bench.Run(cfg.Benchmarks)
	}

	result := health.Score(snap, cfg.Thresholds)

	fmt.Println(report.Summary(snap, result))
	fmt.Println(report.Recommendations(result))

	reporter, err := report.NewHTMLReporter(cfg.ReportTitle)
	if err != nil {
		return fmt.Errorf("failed to load report template: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	htmlPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("hwdoctor_%s.html", time.Now().Format("20060102_150405")))
	if err := reporter.Generate(snap, result, htmlPath); err != nil {
		return err
	}
	log.Printf("Report written to %s", htmlPath)

	if pdfOutput {
		pdfPath := htmlPath[:len(htmlPath)-len(".html")] + ".pdf"
		if err := report.ConvertPDF(prober, htmlPath, pdfPath); err != nil {
			log.Printf("Warning: PDF conversion failed: %v", err)
		} else {
			log.Printf("PDF written to %s", pdfPath)
		}
	}
	return nil
}
