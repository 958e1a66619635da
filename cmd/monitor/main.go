package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"TickerWatch/internal/collector"
	"TickerWatch/internal/config"
	"TickerWatch/internal/monitor"
	"TickerWatch/internal/scheduler"
	"TickerWatch/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TickerWatch starting...")

	// .env is optional
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.API.Key != "" {
		nf := collector.NewNasdaqFetcher(cfg.API.BaseURL, cfg.API.Key, cfg.Proxy, cfg.API.Timeout)
		nf.RetryAttempts = cfg.API.RetryAttempts
		nf.RetryDelay = cfg.API.RetryDelay
		fetcher = nf
	} else {
		log.Println("[WARN] no API key configured, using mock data source")
		fetcher = &collector.MockFetcher{Price: 100}
	}
	if cfg.Cache.Duration > 0 {
		fetcher = collector.NewCachedFetcher(fetcher, cfg.Cache.Duration)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using in-memory: %v", err)
			st = store.NewMemoryStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewMemoryStore()
	}

	// Init monitor and seed watchlist from config
	mon := monitor.NewMonitor(fetcher, st, cfg.Monitor.AnalysisDays)
	mon.Alerts = monitor.AlertThresholds{
		SignificantMovePercent: cfg.Alerts.SignificantMovePercent,
		MajorMovePercent:       cfg.Alerts.MajorMovePercent,
		VolumeMultiple:         cfg.Alerts.VolumeMultiple,
	}
	if len(cfg.Monitor.Watchlist) > 0 {
		if err := mon.AddStocks(cfg.Monitor.Watchlist...); err != nil {
			log.Fatalf("[FATAL] seed watchlist: %v", err)
		}
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, mon, cfg.Export.Dir)
	if err := sched.RegisterAll(cfg.Monitor.Interval, cfg.Monitor.AnalysisInterval); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunAnalysisNow()
	}

	log.Println("[INFO] TickerWatch is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TickerWatch stopped")
}
