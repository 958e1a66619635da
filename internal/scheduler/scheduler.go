package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"TickerWatch/internal/monitor"
	"TickerWatch/internal/report"
)

// Scheduler drives the continuous monitoring loop: a fast price sweep with
// alert checks, and a slower full-watchlist analysis pass.
type Scheduler struct {
	Cron      *cron.Cron
	Monitor   *monitor.Monitor
	ExportDir string
	Ctx       context.Context
}

// NewScheduler creates a Scheduler.
func NewScheduler(ctx context.Context, m *monitor.Monitor, exportDir string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Monitor:   m,
		ExportDir: exportDir,
		Ctx:       ctx,
	}
}

// RegisterAll registers the price sweep and analysis tasks at the given
// cadences.
func (s *Scheduler) RegisterAll(priceInterval, analysisInterval time.Duration) error {
	if _, err := s.Cron.AddFunc(fmt.Sprintf("@every %s", priceInterval), s.priceSweep); err != nil {
		return fmt.Errorf("register price sweep: %w", err)
	}
	if _, err := s.Cron.AddFunc(fmt.Sprintf("@every %s", analysisInterval), s.analysisPass); err != nil {
		return fmt.Errorf("register analysis pass: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAnalysisNow executes the analysis pass immediately (for manual trigger
// / RUN_ON_START).
func (s *Scheduler) RunAnalysisNow() {
	s.analysisPass()
}

// priceSweep prints the watchlist price table and checks alert rules.
func (s *Scheduler) priceSweep() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] running price sweep")
	fmt.Println(report.FormatBatchHeader(time.Now()))

	symbols, err := s.Monitor.Watchlist()
	if err != nil {
		log.Printf("[ERROR] load watchlist: %v", err)
		return
	}
	prices, err := s.Monitor.CurrentPrices()
	if err != nil {
		log.Printf("[ERROR] fetch prices: %v", err)
		return
	}
	fmt.Print(report.FormatWatchlistSummary(symbols, prices))

	triggered, err := s.Monitor.CheckAlerts()
	if err != nil {
		log.Printf("[ERROR] check alerts: %v", err)
		return
	}
	for _, msg := range triggered {
		log.Printf("[INFO] %s", msg)
		fmt.Println("  >>> " + msg)
	}
}

// analysisPass analyzes the whole watchlist, prints reports, and exports
// each result (or its error document) when an export dir is configured.
func (s *Scheduler) analysisPass() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] running watchlist analysis")

	results, failures, err := s.Monitor.AnalyzeWatchlist(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] watchlist analysis: %v", err)
		return
	}

	for symbol, result := range results {
		fmt.Print(report.FormatAnalysisReport(result))
		for _, msg := range s.Monitor.MovementAlerts(result) {
			log.Printf("[INFO] %s", msg)
			fmt.Println("  >>> " + msg)
		}
		if s.ExportDir != "" {
			if err := report.ExportResult(s.exportPath(symbol), result); err != nil {
				log.Printf("[ERROR] export %s: %v", symbol, err)
			}
		}
	}

	if len(failures) > 0 {
		fmt.Print(report.FormatFailures(failures))
		for symbol, ferr := range failures {
			log.Printf("[WARN] analysis of %s failed: %v", symbol, ferr)
			if s.ExportDir != "" {
				if err := report.ExportError(s.exportPath(symbol), ferr); err != nil {
					log.Printf("[ERROR] export error doc for %s: %v", symbol, err)
				}
			}
		}
	}
}

func (s *Scheduler) exportPath(symbol string) string {
	name := fmt.Sprintf("%s.json", strings.ToLower(symbol))
	if err := os.MkdirAll(s.ExportDir, 0o755); err != nil {
		log.Printf("[WARN] create export dir: %v", err)
	}
	return filepath.Join(s.ExportDir, name)
}
