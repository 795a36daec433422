package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the two periodic sweeps: the recommendation sweep on a
// short interval and the admin digest on a longer one. One instance only;
// overlap between a slow sweep and the next tick is handled by the engine's
// per-user in-flight guard, not here.
type Scheduler struct {
	cron          *cron.Cron
	ctx           context.Context
	cancel        context.CancelFunc
	recommendFunc func(ctx context.Context) error
	digestFunc    func(ctx context.Context) error
}

// New creates a new scheduler running in UTC.
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetRecommendFunc sets the recommendation sweep.
func (s *Scheduler) SetRecommendFunc(f func(ctx context.Context) error) {
	s.recommendFunc = f
}

// SetDigestFunc sets the admin digest sweep.
func (s *Scheduler) SetDigestFunc(f func(ctx context.Context) error) {
	s.digestFunc = f
}

// Start registers both sweeps and starts the cron loop.
func (s *Scheduler) Start(recommendEvery, digestEvery time.Duration) error {
	if s.recommendFunc == nil {
		return fmt.Errorf("recommend function not set")
	}

	if _, err := s.cron.AddFunc(intervalSpec(recommendEvery), func() {
		if err := s.recommendFunc(s.ctx); err != nil {
			log.Printf("❌ Recommendation sweep failed: %v", err)
		}
	}); err != nil {
		return err
	}

	if s.digestFunc != nil {
		if _, err := s.cron.AddFunc(intervalSpec(digestEvery), func() {
			if err := s.digestFunc(s.ctx); err != nil {
				log.Printf("❌ Digest sweep failed: %v", err)
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	log.Printf("📅 Scheduler started - recommendations every %s, digest every %s", recommendEvery, digestEvery)
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

// IsRunning reports whether any jobs are registered and the loop started.
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}

func intervalSpec(interval time.Duration) string {
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	return fmt.Sprintf("@every %ds", seconds)
}
