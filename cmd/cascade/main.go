package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Cascade/internal/collector"
	"Cascade/internal/config"
	"Cascade/internal/notifier"
	"Cascade/internal/recorder"
	"Cascade/internal/scheduler"
	"Cascade/internal/server"
	"Cascade/internal/source"
	"Cascade/internal/state"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] Cascade starting...")

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

	// Wire a fetcher per dataset
	datasets := make([]collector.Dataset, 0, len(cfg.Datasets))
	for _, ds := range cfg.Datasets {
		var fetcher source.Fetcher
		if ds.URL != "" {
			fetcher = source.NewHTTPFetcher(ds.URL, ds.APIKey, cfg.Proxy)
		} else {
			fetcher = source.NewCSVFetcher(ds.CSVPath)
		}
		log.Printf("[INFO] dataset %s: source %s", ds.Name, fetcher.Name())
		datasets = append(datasets, collector.Dataset{
			Name:    ds.Name,
			Fetcher: fetcher,
			XField:  ds.XField,
			YField:  ds.YField,
		})
	}
	col := collector.NewCollector(datasets)

	// Init state manager
	st, err := state.NewManager(cfg.State.File)
	if err != nil {
		log.Fatalf("[FATAL] init state manager: %v", err)
	}

	// Init webhook notifier
	wn := notifier.NewWebhookNotifier(cfg.Webhook.URL, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, st, wn, rec, cfg.Webhook.AlertThreshold, cfg.Retention.Days)
	if err := sched.RegisterAll(cfg.Schedule.RefreshCron, cfg.Schedule.DigestCron, cfg.Schedule.PruneCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start HTTP server
	srv := server.New(cfg.Server.Addr, st)
	srv.Start()
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[ERROR] http shutdown: %v", err)
		}
	}()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing all datasets now")
		go sched.RunRefreshNow()
	}

	log.Println("[INFO] Cascade is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] Cascade stopped")
}
