package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs scoring passes and stale listing cleanup on fixed intervals.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger

	cleanupMaxAge  time.Duration
	rescoreEntryID cron.EntryID
	cleanupEntryID cron.EntryID
}

// NewScheduler registers the periodic jobs. A zero interval disables the
// corresponding job.
func NewScheduler(
	eng *Engine,
	rescoreInterval time.Duration,
	cleanupInterval time.Duration,
	cleanupMaxAge time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:          c,
		engine:        eng,
		log:           log,
		cleanupMaxAge: cleanupMaxAge,
	}

	if rescoreInterval > 0 {
		id, err := c.AddFunc("@every "+rescoreInterval.String(), s.runRescore)
		if err != nil {
			return nil, err
		}
		s.rescoreEntryID = id
	}

	if cleanupInterval > 0 && cleanupMaxAge > 0 {
		id, err := c.AddFunc("@every "+cleanupInterval.String(), s.runCleanup)
		if err != nil {
			return nil, err
		}
		s.cleanupEntryID = id
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRescore() {
	ctx := context.Background()
	s.log.Info("scheduled rescore starting")
	if _, err := s.engine.RunRescore(ctx); err != nil {
		s.log.Error("scheduled rescore failed", "error", err)
	}
}

func (s *Scheduler) runCleanup() {
	ctx := context.Background()
	s.log.Info("scheduled cleanup starting", "max_age", s.cleanupMaxAge)
	if _, err := s.engine.Cleanup(ctx, s.cleanupMaxAge); err != nil {
		s.log.Error("scheduled cleanup failed", "error", err)
	}
}
