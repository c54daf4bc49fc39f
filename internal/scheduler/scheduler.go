package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"Cascade/internal/collector"
	"Cascade/internal/notifier"
	"Cascade/internal/recorder"
	"Cascade/internal/report"
	"Cascade/internal/state"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron           *cron.Cron
	Collector      *collector.Collector
	State          *state.Manager
	Notifier       *notifier.WebhookNotifier
	Recorder       recorder.Recorder
	Ctx            context.Context
	AlertThreshold float64
	RetentionDays  int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, st *state.Manager, wn *notifier.WebhookNotifier, rec recorder.Recorder, alertThreshold float64, retentionDays int) *Scheduler {
	return &Scheduler{
		Cron:           cron.New(cron.WithSeconds()),
		Collector:      col,
		State:          st,
		Notifier:       wn,
		Recorder:       rec,
		Ctx:            ctx,
		AlertThreshold: alertThreshold,
		RetentionDays:  retentionDays,
	}
}

// RegisterAll registers refresh, digest, and prune tasks.
func (s *Scheduler) RegisterAll(refreshCron, digestCron, pruneCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	if _, err := s.Cron.AddFunc(pruneCron, s.pruneTask); err != nil {
		return fmt.Errorf("register prune task: %w", err)
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

// RunRefreshNow executes the refresh task immediately (for RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running refresh task")
	datasets, err := s.Collector.CollectAll(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] refresh collect: %v", err)
		s.trySend(report.FormatFailure(err))
		return
	}

	for _, ds := range datasets {
		delta, first := s.State.Update(ds)

		if err := s.Recorder.RecordSnapshot(recorder.NewSnapshot(ds)); err != nil {
			log.Printf("[ERROR] record snapshot %s: %v", ds.Name, err)
		}

		if first {
			continue
		}
		if level := report.ClassifyDelta(delta, s.AlertThreshold); level != "" {
			log.Printf("[INFO] %s net total moved %+.2f, alert level %s", ds.Name, delta, level)
			s.trySend(report.FormatAlert(ds, delta, level))
		}
	}
}

func (s *Scheduler) digestTask() {
	log.Println("[INFO] running digest task")
	s.trySend(report.FormatDigest(s.State.List()))
}

func (s *Scheduler) pruneTask() {
	log.Println("[INFO] running prune task")
	cutoff := time.Now().AddDate(0, 0, -s.RetentionDays)
	deleted, err := s.Recorder.PruneBefore(cutoff)
	if err != nil {
		log.Printf("[ERROR] prune: %v", err)
		return
	}
	log.Printf("[INFO] pruned %d rows older than %s", deleted, cutoff.Format("2006-01-02"))
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
